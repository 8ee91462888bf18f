package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"offices-service/internal/dto"
	"offices-service/internal/entities"
	"offices-service/internal/integrations/geocoding"
	"offices-service/internal/repositories"
	apperrors "offices-service/pkg/errors"
	"offices-service/pkg/rabbitmq"
)

type OfficeServiceInterface interface {
	GetOffices(ctx context.Context) ([]dto.OfficeResponseDTO, error)
	GetActiveOffices(ctx context.Context) ([]dto.OfficeResponseDTO, error)
	FindOffice(ctx context.Context, id string) (*dto.OfficeResponseDTO, error)
	CreateOffice(ctx context.Context, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error)
	UpdateOffice(ctx context.Context, id string, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error)
	DeleteOffice(ctx context.Context, id string) error
}

// OfficeService координирует путь записи офиса: валидация → геокодирование →
// сохранение → публикация события. Порядок фиксирован; сбой геокодера
// прерывает операцию до записи, сбой публикации запись не откатывает.
type OfficeService struct {
	officeRepository repositories.OfficeRepositoryInterface
	geocodingClient  geocoding.ClientInterface
	publisher        rabbitmq.PublisherInterface
	logger           *zap.Logger
}

func NewOfficeService(
	officeRepository repositories.OfficeRepositoryInterface,
	geocodingClient geocoding.ClientInterface,
	publisher rabbitmq.PublisherInterface,
	logger *zap.Logger,
) OfficeServiceInterface {
	return &OfficeService{
		officeRepository: officeRepository,
		geocodingClient:  geocodingClient,
		publisher:        publisher,
		logger:           logger,
	}
}

// "Переводчик" в DTO для ответа. Координаты берутся только из сущности,
// клиент их не задает.
func toOfficeResponseDTO(office *entities.Office) *dto.OfficeResponseDTO {
	if office == nil {
		return nil
	}
	return &dto.OfficeResponseDTO{
		ID:                  office.ID,
		City:                office.City,
		Street:              office.Street,
		HouseNumber:         office.HouseNumber,
		OfficeNumber:        office.OfficeNumber,
		Longitude:           office.Longitude,
		Latitude:            office.Latitude,
		PhotoID:             office.PhotoID,
		RegistryPhoneNumber: office.RegistryPhoneNumber,
		IsActive:            office.IsActive,
	}
}

// applyOfficeRequest переносит изменяемые поля запроса в сущность.
// ID и координаты запросом не управляются: ID неизменяем, координаты
// пересчитываются геокодером.
func applyOfficeRequest(office *entities.Office, payload dto.OfficeRequestDTO) {
	office.City = payload.City
	office.Street = payload.Street
	office.HouseNumber = payload.HouseNumber
	office.OfficeNumber = payload.OfficeNumber
	office.PhotoID = payload.PhotoID
	office.RegistryPhoneNumber = payload.RegistryPhoneNumber
	office.IsActive = payload.IsActive
}

func (s *OfficeService) GetOffices(ctx context.Context) ([]dto.OfficeResponseDTO, error) {
	offices, err := s.officeRepository.GetOffices(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении офисов", zap.Error(err))
		return nil, err
	}

	responseDTOs := make([]dto.OfficeResponseDTO, 0, len(offices))
	for i := range offices {
		responseDTOs = append(responseDTOs, *toOfficeResponseDTO(&offices[i]))
	}
	return responseDTOs, nil
}

func (s *OfficeService) GetActiveOffices(ctx context.Context) ([]dto.OfficeResponseDTO, error) {
	isActive := true
	offices, err := s.officeRepository.GetOfficesByFilter(ctx, repositories.OfficeFilter{IsActive: &isActive})
	if err != nil {
		s.logger.Error("Ошибка при получении активных офисов", zap.Error(err))
		return nil, err
	}

	responseDTOs := make([]dto.OfficeResponseDTO, 0, len(offices))
	for i := range offices {
		responseDTOs = append(responseDTOs, *toOfficeResponseDTO(&offices[i]))
	}
	return responseDTOs, nil
}

func (s *OfficeService) FindOffice(ctx context.Context, id string) (*dto.OfficeResponseDTO, error) {
	office, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOfficeResponseDTO(office), nil
}

func (s *OfficeService) CreateOffice(ctx context.Context, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error) {
	if messages := validateOfficeRequest(payload); len(messages) != 0 {
		return nil, apperrors.NewValidationError(messages)
	}

	office := &entities.Office{ID: uuid.NewString()}
	applyOfficeRequest(office, payload)

	longitude, latitude, err := s.geocodingClient.GetCoordinates(ctx, office.City, office.Street, office.HouseNumber)
	if err != nil {
		s.logger.Error("Ошибка геокодирования адреса", zap.Error(err))
		return nil, err
	}
	office.Longitude = longitude
	office.Latitude = latitude

	if err := s.officeRepository.CreateOffice(ctx, office); err != nil {
		s.logger.Error("Ошибка при создании офиса", zap.Error(err))
		return nil, err
	}

	if err := s.publisher.Publish(ctx, office.ToEvent(), rabbitmq.AddOfficeQueue); err != nil {
		// Запись уже сохранена и не откатывается: разрыв между хранилищем
		// и брокером принят как допустимый.
		s.logger.Error("Ошибка публикации события о создании офиса",
			zap.Error(err), zap.String("id", office.ID))
		return nil, err
	}

	s.logger.Info("Офис успешно создан", zap.String("id", office.ID))
	return toOfficeResponseDTO(office), nil
}

func (s *OfficeService) UpdateOffice(ctx context.Context, id string, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error) {
	office, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		return nil, err
	}

	if messages := validateOfficeRequest(payload); len(messages) != 0 {
		return nil, apperrors.NewValidationError(messages)
	}

	applyOfficeRequest(office, payload)

	// Адрес мог измениться — координаты пересчитываются всегда.
	longitude, latitude, err := s.geocodingClient.GetCoordinates(ctx, office.City, office.Street, office.HouseNumber)
	if err != nil {
		s.logger.Error("Ошибка геокодирования адреса", zap.Error(err), zap.String("id", id))
		return nil, err
	}
	office.Longitude = longitude
	office.Latitude = latitude

	if err := s.officeRepository.UpdateOffice(ctx, office); err != nil {
		s.logger.Error("Ошибка при обновлении офиса", zap.Error(err), zap.String("id", id))
		return nil, err
	}

	if err := s.publisher.Publish(ctx, office.ToEvent(), rabbitmq.UpdateOfficeQueue); err != nil {
		s.logger.Error("Ошибка публикации события об обновлении офиса",
			zap.Error(err), zap.String("id", id))
		return nil, err
	}

	s.logger.Info("Офис успешно обновлен", zap.String("id", id))
	return toOfficeResponseDTO(office), nil
}

func (s *OfficeService) DeleteOffice(ctx context.Context, id string) error {
	// Снимок нужен до удаления: из него строится событие.
	office, err := s.officeRepository.FindOffice(ctx, id)
	if err != nil {
		return err
	}

	if err := s.officeRepository.DeleteOffice(ctx, id); err != nil {
		s.logger.Error("Ошибка при удалении офиса", zap.Error(err), zap.String("id", id))
		return err
	}

	if err := s.publisher.Publish(ctx, office.ToEvent(), rabbitmq.DeleteOfficeQueue); err != nil {
		s.logger.Error("Ошибка публикации события об удалении офиса",
			zap.Error(err), zap.String("id", id))
		return err
	}

	s.logger.Info("Офис успешно удален", zap.String("id", id))
	return nil
}
