package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"offices-service/internal/dto"
	apperrors "offices-service/pkg/errors"
)

// fakeOfficeService подменяет сервисный слой: контроллер проверяется
// только на трансляцию запросов и кодов ответа.
type fakeOfficeService struct {
	offices map[string]dto.OfficeResponseDTO
	err     error
}

func newFakeOfficeService() *fakeOfficeService {
	return &fakeOfficeService{offices: make(map[string]dto.OfficeResponseDTO)}
}

func (s *fakeOfficeService) GetOffices(_ context.Context) ([]dto.OfficeResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]dto.OfficeResponseDTO, 0, len(s.offices))
	for _, office := range s.offices {
		result = append(result, office)
	}
	return result, nil
}

func (s *fakeOfficeService) GetActiveOffices(_ context.Context) ([]dto.OfficeResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := make([]dto.OfficeResponseDTO, 0)
	for _, office := range s.offices {
		if office.IsActive {
			result = append(result, office)
		}
	}
	return result, nil
}

func (s *fakeOfficeService) FindOffice(_ context.Context, id string) (*dto.OfficeResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	office, ok := s.offices[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Офис не найден")
	}
	return &office, nil
}

func (s *fakeOfficeService) CreateOffice(_ context.Context, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	office := dto.OfficeResponseDTO{
		ID:                  uuid.NewString(),
		City:                payload.City,
		Street:              payload.Street,
		HouseNumber:         payload.HouseNumber,
		OfficeNumber:        payload.OfficeNumber,
		Longitude:           "37.617635",
		Latitude:            "55.755814",
		PhotoID:             payload.PhotoID,
		RegistryPhoneNumber: payload.RegistryPhoneNumber,
		IsActive:            payload.IsActive,
	}
	s.offices[office.ID] = office
	return &office, nil
}

func (s *fakeOfficeService) UpdateOffice(_ context.Context, id string, payload dto.OfficeRequestDTO) (*dto.OfficeResponseDTO, error) {
	if s.err != nil {
		return nil, s.err
	}
	office, ok := s.offices[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("Офис не найден")
	}
	office.City = payload.City
	s.offices[id] = office
	return &office, nil
}

func (s *fakeOfficeService) DeleteOffice(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.offices[id]; !ok {
		return apperrors.NewNotFoundError("Офис не найден")
	}
	delete(s.offices, id)
	return nil
}

func newTestController(svc *fakeOfficeService) (*echo.Echo, *OfficeController) {
	return echo.New(), NewOfficeController(svc, zap.NewNop())
}

const validBody = `{
	"city": "Berlin",
	"street": "Main",
	"houseNumber": "1",
	"registryPhoneNumber": "+49000",
	"isActive": true
}`

func TestOfficeController_CreateOffice(t *testing.T) {
	e, ctrl := newTestController(newFakeOfficeService())

	req := httptest.NewRequest(http.MethodPost, "/api/office", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, ctrl.CreateOffice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Status bool                  `json:"status"`
		Body   dto.OfficeResponseDTO `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Status)
	assert.NotEmpty(t, response.Body.ID)
	assert.Equal(t, "Berlin", response.Body.City)
	assert.NotEmpty(t, response.Body.Longitude)
}

func TestOfficeController_CreateOffice_ValidationErrorBody(t *testing.T) {
	svc := newFakeOfficeService()
	svc.err = apperrors.NewValidationError(map[string]string{
		"registryPhoneNumber": "Телефон регистратуры должен начинаться с '+'",
	})
	e, ctrl := newTestController(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/office", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateOffice(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response struct {
		Status bool              `json:"status"`
		Body   map[string]string `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Status)
	assert.Contains(t, response.Body, "registryPhoneNumber")
}

func TestOfficeController_GetOffices(t *testing.T) {
	svc := newFakeOfficeService()
	e, ctrl := newTestController(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/offices", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.GetOffices(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfficeController_FindOffice_BadID(t *testing.T) {
	e, ctrl := newTestController(newFakeOfficeService())

	req := httptest.NewRequest(http.MethodGet, "/api/office/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, ctrl.FindOffice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfficeController_FindOffice_NotFound(t *testing.T) {
	e, ctrl := newTestController(newFakeOfficeService())

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/office/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, ctrl.FindOffice(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOfficeController_DeleteOffice_NoContent(t *testing.T) {
	svc := newFakeOfficeService()
	created, err := svc.CreateOffice(context.Background(), dto.OfficeRequestDTO{
		City: "Berlin", Street: "Main", HouseNumber: "1", RegistryPhoneNumber: "+49000",
	})
	require.NoError(t, err)

	e, ctrl := newTestController(svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/office/"+created.ID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	require.NoError(t, ctrl.DeleteOffice(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, svc.offices)
}

func TestOfficeController_UpstreamErrorHidesDetails(t *testing.T) {
	svc := newFakeOfficeService()
	svc.err = apperrors.NewUpstreamError("Сервис геокодирования недоступен",
		assert.AnError)
	e, ctrl := newTestController(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/office", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, ctrl.CreateOffice(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
