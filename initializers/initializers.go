package initializers

import (
	"context"

	"medfy-backend/config"
	"medfy-backend/fiberlog"
	authhandler "medfy-backend/lib/auth"
	chathandler "medfy-backend/lib/chat"
	documentshandler "medfy-backend/lib/documents"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	authhandler.NewHandler()
	documentshandler.NewHandler()
	chathandler.NewHandler()
}
