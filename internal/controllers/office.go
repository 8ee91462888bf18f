package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"offices-service/internal/dto"
	"offices-service/internal/services"
	apperrors "offices-service/pkg/errors"
	"offices-service/pkg/utils"
)

type OfficeController struct {
	officeService services.OfficeServiceInterface
	logger        *zap.Logger
}

func NewOfficeController(officeService services.OfficeServiceInterface, logger *zap.Logger) *OfficeController {
	return &OfficeController{
		officeService: officeService,
		logger:        logger,
	}
}

func (c *OfficeController) GetOffices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	offices, err := c.officeService.GetOffices(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при получении списка офисов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, offices, "Список офисов успешно получен", http.StatusOK)
}

func (c *OfficeController) GetActiveOffices(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	offices, err := c.officeService.GetActiveOffices(reqCtx)
	if err != nil {
		c.logger.Error("Ошибка при получении списка активных офисов", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, offices, "Список активных офисов успешно получен", http.StatusOK)
}

func (c *OfficeController) FindOffice(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")
	if uuid.Validate(id) != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID офиса"), c.logger)
	}

	res, err := c.officeService.FindOffice(reqCtx, id)
	if err != nil {
		c.logger.Error("Ошибка при поиске офиса", zap.Error(err), zap.String("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Офис успешно найден", http.StatusOK)
}

func (c *OfficeController) CreateOffice(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.OfficeRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}

	res, err := c.officeService.CreateOffice(reqCtx, payload)
	if err != nil {
		c.logger.Error("Ошибка при создании офиса", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Офис успешно создан", http.StatusCreated)
}

func (c *OfficeController) UpdateOffice(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")
	if uuid.Validate(id) != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID офиса"), c.logger)
	}

	var payload dto.OfficeRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"), c.logger)
	}

	res, err := c.officeService.UpdateOffice(reqCtx, id, payload)
	if err != nil {
		c.logger.Error("Ошибка при обновлении офиса", zap.Error(err), zap.String("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Офис успешно обновлен", http.StatusOK)
}

func (c *OfficeController) DeleteOffice(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")
	if uuid.Validate(id) != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Некорректный ID офиса"), c.logger)
	}

	if err := c.officeService.DeleteOffice(reqCtx, id); err != nil {
		c.logger.Error("Ошибка при удалении офиса", zap.Error(err), zap.String("id", id))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.NoContent(http.StatusNoContent)
}
