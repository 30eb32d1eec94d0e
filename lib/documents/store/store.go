package documentstore

import (
	"gorm.io/gorm"

	dbmodels "medfy-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.Document) (id string, err error)
	List(userID string, page, limit int) (list []dbmodels.Document, rowCount int64, err error)
	GetByID(userID, id string) (*dbmodels.Document, error)
	Delete(userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Document) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(userID string, page, limit int) (list []dbmodels.Document, rowCount int64, err error) {
	list = []dbmodels.Document{}
	tx := i.db.
		Model(dbmodels.Document{}).
		Where("user_id = ?", userID)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	err = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) GetByID(userID, id string) (*dbmodels.Document, error) {
	rec := dbmodels.Document{}
	err := i.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(userID, id string) error {
	err := i.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&dbmodels.Document{}).
		Error
	if err != nil {
		return err
	}
	return nil
}
