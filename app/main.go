package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"offices-service/internal/integrations/geocoding"
	"offices-service/internal/routes"
	"offices-service/pkg/config"
	"offices-service/pkg/database/mongodb"
	apperrors "offices-service/pkg/errors"
	applogger "offices-service/pkg/logger"
	"offices-service/pkg/rabbitmq"
	"offices-service/pkg/service"
	"offices-service/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	// 1. Базовые экземпляры Echo, логгера и конфига
	e := echo.New()
	logger := applogger.NewLogger()
	cfg := config.New()

	// 2. Middleware: паники и CORS
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// 3. Подключаемся к MongoDB
	mongoClient := mongodb.ConnectDB(cfg.Mongo)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Ошибка при отключении от MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)

	// 4. Подключаемся к RabbitMQ и объявляем очереди офисов
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Fatal("не удалось подключиться к RabbitMQ", zap.Error(err))
	}
	defer publisher.Close()

	if err := publisher.DeclareQueues(context.Background()); err != nil {
		logger.Fatal("не удалось объявить очереди офисов", zap.Error(err))
	}

	// 5. Внешние сервисы: геокодер и проверка токенов
	geocoder := geocoding.NewYandexClient(cfg.Geocoding, &http.Client{}, logger)
	jwtSvc := service.NewJWTService(cfg.JWT)

	// 6. Роуты
	routes.InitRouter(e, db, geocoder, publisher, jwtSvc, logger, cfg)

	// 7. Запускаем сервер
	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
