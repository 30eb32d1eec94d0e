package dbmodels

type ChatMessage struct {
	BaseModel
	UserID    string `gorm:"type:varchar(36);index" comment:"Identificador do médico dono da conversa"`
	SessionID string `gorm:"type:varchar(36);index" comment:"Identificador da conversa"`
	Role      string `gorm:"type:varchar(20)" comment:"Papel da mensagem (user/assistant)"`
	Content   string `gorm:"type:text" comment:"Texto da mensagem"`
}
