package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"offices-service/internal/dto"
)

var officeValidate = validator.New()

// validateOfficeRequest проверяет обязательные поля запроса до любых
// внешних вызовов и возвращает карту "поле → сообщение".
// Пустая карта означает, что запрос корректен.
func validateOfficeRequest(payload dto.OfficeRequestDTO) map[string]string {
	err := officeValidate.Struct(payload)
	if err == nil {
		return nil
	}

	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["request"] = "Неверный формат данных"
		return messages
	}

	for _, fieldError := range validationErrors {
		switch fieldError.Field() {
		case "City":
			messages["city"] = "Город не должен быть пустым"
		case "Street":
			messages["street"] = "Улица не должна быть пустой"
		case "HouseNumber":
			messages["houseNumber"] = "Номер дома не должен быть пустым"
		case "RegistryPhoneNumber":
			if fieldError.Tag() == "startswith" {
				messages["registryPhoneNumber"] = "Телефон регистратуры должен начинаться с '+'"
			} else {
				messages["registryPhoneNumber"] = "Телефон регистратуры не должен быть пустым"
			}
		}
	}

	return messages
}
