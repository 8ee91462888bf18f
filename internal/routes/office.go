package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"offices-service/internal/controllers"
	"offices-service/internal/integrations/geocoding"
	"offices-service/internal/repositories"
	"offices-service/internal/services"
	"offices-service/pkg/middleware"
	"offices-service/pkg/rabbitmq"
)

func runOfficeRouter(
	api *echo.Group,
	authMW *middleware.AuthMiddleware,
	db *mongo.Database,
	collectionName string,
	geocoder geocoding.ClientInterface,
	publisher rabbitmq.PublisherInterface,
	logger *zap.Logger,
) {
	officeRepository := repositories.NewOfficeRepository(db, collectionName)
	officeService := services.NewOfficeService(officeRepository, geocoder, publisher, logger)
	officeCtrl := controllers.NewOfficeController(officeService, logger)

	// Чтение открыто, изменяющие операции за bearer-токеном.
	api.GET("/offices", officeCtrl.GetOffices)
	api.GET("/offices/active", officeCtrl.GetActiveOffices)
	api.GET("/office/:id", officeCtrl.FindOffice)

	secureGroup := api.Group("", authMW.Auth)
	secureGroup.POST("/office", officeCtrl.CreateOffice)
	secureGroup.PUT("/office/:id", officeCtrl.UpdateOffice)
	secureGroup.DELETE("/office/:id", officeCtrl.DeleteOffice)
}
