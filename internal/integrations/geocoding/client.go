package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"offices-service/pkg/config"
	apperrors "offices-service/pkg/errors"
)

// ClientInterface переводит почтовый адрес в пару координат.
// Порядок значений: долгота, широта — как в ответе геокодера Яндекса.
type ClientInterface interface {
	GetCoordinates(ctx context.Context, city, street, houseNumber string) (longitude string, latitude string, err error)
}

// Ровно та часть ответа геокодера, которая нужна: первый featureMember
// и его Point.pos вида "37.617635 55.755814".
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

type YandexClient struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewYandexClient(cfg config.GeocodingConfig, httpClient *http.Client, logger *zap.Logger) ClientInterface {
	return &YandexClient{
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *YandexClient) GetCoordinates(ctx context.Context, city, street, houseNumber string) (string, string, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("geocode", city+" "+street+" "+houseNumber)
	query.Set("format", "json")

	requestURL := c.apiURL + "?" + query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", "", apperrors.NewUpstreamError("Ошибка обращения к сервису геокодирования", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", "", apperrors.NewUpstreamError("Ошибка обращения к сервису геокодирования", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		c.logger.Error("Геокодер вернул неуспешный статус", zap.Int("status", response.StatusCode))
		return "", "", apperrors.NewUpstreamError(
			fmt.Sprintf("Сервис геокодирования вернул статус %d", response.StatusCode), nil)
	}

	var body yandexResponse
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return "", "", apperrors.NewUpstreamError("Некорректный ответ сервиса геокодирования", err)
	}

	members := body.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return "", "", apperrors.NewNotFoundError("Не удалось найти координаты по указанному адресу")
	}

	// pos: первое значение — долгота, второе — широта.
	coordinates := strings.Fields(members[0].GeoObject.Point.Pos)
	if len(coordinates) != 2 {
		return "", "", apperrors.NewUpstreamError("Некорректный ответ сервиса геокодирования", nil)
	}

	return coordinates[0], coordinates[1], nil
}
