package authhandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"medfy-backend/db"
	userstore "medfy-backend/lib/auth/store"
	authutils "medfy-backend/lib/utils/auth-utils"
	authapimodels "medfy-backend/models/api/auth"
	dbmodels "medfy-backend/models/db"
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (authapimodels.ProfileView, error)
	Login(email, password string) (authapimodels.JWTResponse, error)
	Me(ctx *fiber.Ctx) (authapimodels.ProfileView, error)
	RefreshToken(refreshToken string) (authapimodels.JWTResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Register(req authapimodels.RegisterRequest) (authapimodels.ProfileView, error) {
	logger := log.WithField("email", req.Email)
	existing, err := i.store.FindByEmail(req.Email)
	if err != nil {
		logger.WithError(err).Error("erro ao verificar email existente")
		return authapimodels.ProfileView{}, err
	}
	if existing != nil {
		logger.Debug("já existe usuário com este email")
		return authapimodels.ProfileView{}, errors.New("já existe usuário com este email")
	}
	rec := dbmodels.User{
		Email:     req.Email,
		Password:  authutils.GetMD5Hash(req.Password),
		FullName:  req.FullName,
		Specialty: req.Specialty,
		CRM:       req.CRM,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("erro ao criar usuário")
		return authapimodels.ProfileView{}, err
	}
	return authapimodels.ProfileView{
		ID:        id,
		Email:     req.Email,
		FullName:  req.FullName,
		Specialty: req.Specialty,
		CRM:       req.CRM,
	}, nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("erro ao buscar usuário pelo email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("usuário com este email não encontrado")
		return authapimodels.JWTResponse{}, errors.New("usuário com este email não encontrado")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("usuário não passou na verificação de senha")
		return authapimodels.JWTResponse{}, errors.New("usuário não passou na verificação de senha")
	}
	response, err = i.mintTokens(user.ID, user.FullName)
	if err != nil {
		logger.WithError(err).Error("erro ao gerar JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.WithError(err).Error("erro ao atualizar data do último login")
	}
	return response, nil
}

func (i impl) Me(ctx *fiber.Ctx) (authapimodels.ProfileView, error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return authapimodels.ProfileView{}, errors.New("token sem identificador de usuário")
	}
	user, err := i.store.GetByID(sub)
	if err != nil {
		log.WithField("user_id", sub).WithError(err).Error("erro ao buscar usuário")
		return authapimodels.ProfileView{}, err
	}
	if user == nil {
		return authapimodels.ProfileView{}, errors.New("usuário não encontrado")
	}
	return authapimodels.ProfileView{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Specialty: user.Specialty,
		CRM:       user.CRM,
	}, nil
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	claims, err := authutils.ParseToken(refreshToken)
	if err != nil {
		log.WithError(err).Debug("refresh token inválido")
		return authapimodels.JWTResponse{}, errors.New("refresh token inválido")
	}
	sub, _ := claims["sub"].(string)
	user, err := i.store.GetByID(sub)
	if err != nil {
		log.WithField("user_id", sub).WithError(err).Error("erro ao buscar usuário")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("usuário não encontrado")
	}
	return i.mintTokens(user.ID, user.FullName)
}

func (i impl) mintTokens(userID, name string) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
