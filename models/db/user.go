package dbmodels

import "time"

type User struct {
	BaseModel
	Email     string    `gorm:"type:varchar(255);uniqueIndex" comment:"Email do médico, usado como login"`
	Password  string    `gorm:"type:varchar(255)" comment:"Hash MD5 da senha"`
	FullName  string    `gorm:"type:varchar(255)" comment:"Nome completo"`
	Specialty string    `gorm:"type:varchar(255)" comment:"Especialidade médica"`
	CRM       string    `gorm:"type:varchar(50)" comment:"Registro no conselho regional de medicina"`
	LastLogin time.Time `comment:"Data do último login"`
}
