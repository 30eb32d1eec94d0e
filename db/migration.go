package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "medfy-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Executando migrações")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura User")
	}
	if err := DB.AutoMigrate(&dbmodels.Document{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura Document")
	}
	if err := DB.AutoMigrate(&dbmodels.ChatMessage{}); err != nil {
		return errors.Wrap(err, "erro ao criar a estrutura ChatMessage")
	}
	log.Info("Migração concluída com sucesso")
	return nil
}
