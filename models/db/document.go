package dbmodels

type Document struct {
	BaseModel
	UserID      string       `gorm:"type:varchar(36);index" comment:"Identificador do médico dono do documento"`
	Type        DocumentType `gorm:"type:varchar(50)" comment:"Tipo do documento (laudo/receita/relatorio)"`
	Subtype     string       `gorm:"type:varchar(255)" comment:"Subtipo (tipo de exame ou de relatório)"`
	PatientName string       `gorm:"type:varchar(255)" comment:"Nome do paciente"`
	PatientAge  int          `comment:"Idade do paciente"`
	PatientSex  string       `gorm:"type:varchar(10)" comment:"Sexo do paciente"`
	Content     string       `gorm:"type:text" comment:"Texto gerado pela IA"`
	Metadata    string       `gorm:"type:jsonb" comment:"Campos do formulário em JSON"`
}

type DocumentType string

const (
	DocumentTypeLaudo     DocumentType = "laudo"
	DocumentTypeReceita   DocumentType = "receita"
	DocumentTypeRelatorio DocumentType = "relatorio"
)
