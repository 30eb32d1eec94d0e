package docapimodels

import (
	"time"

	dbmodels "medfy-backend/models/db"
)

type DocumentView struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Subtype     string    `json:"subtype"`
	PatientName string    `json:"patient_name"`
	PatientAge  int       `json:"patient_age"`
	PatientSex  string    `json:"patient_sex"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func DocumentConvert(rec dbmodels.Document) DocumentView {
	return DocumentView{
		ID:          rec.ID,
		Type:        string(rec.Type),
		Subtype:     rec.Subtype,
		PatientName: rec.PatientName,
		PatientAge:  rec.PatientAge,
		PatientSex:  rec.PatientSex,
		Content:     rec.Content,
		CreatedAt:   rec.CreatedAt,
	}
}
