package chatstore

import (
	"gorm.io/gorm"

	dbmodels "medfy-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.ChatMessage) (id string, err error)
	ListBySession(userID, sessionID string) ([]dbmodels.ChatMessage, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.ChatMessage) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListBySession(userID, sessionID string) ([]dbmodels.ChatMessage, error) {
	list := []dbmodels.ChatMessage{}
	err := i.db.
		Model(dbmodels.ChatMessage{}).
		Where("user_id = ?", userID).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
