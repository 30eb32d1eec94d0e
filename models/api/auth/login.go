package authapimodels

import (
	"net/mail"
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email em formato inválido")
	}
	return nil
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"` // especialidade médica
	CRM       string `json:"crm"`       // registro no conselho regional
}

func (r RegisterRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("email em formato inválido")
	}
	if len(strings.TrimSpace(r.Password)) == 0 {
		return errors.New("senha não pode ser vazia")
	}
	if len(strings.TrimSpace(r.FullName)) == 0 {
		return errors.New("nome completo não pode ser vazio")
	}
	return nil
}

type ProfileView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	CRM       string `json:"crm"`
}
