package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"offices-service/internal/integrations/geocoding"
	"offices-service/pkg/config"
	"offices-service/pkg/middleware"
	"offices-service/pkg/rabbitmq"
	"offices-service/pkg/service"
)

func InitRouter(
	e *echo.Echo,
	db *mongo.Database,
	geocoder geocoding.ClientInterface,
	publisher rabbitmq.PublisherInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	runOfficeRouter(api, authMW, db, cfg.Mongo.Collection, geocoder, publisher, logger)
}
