package dto

// OfficeRequestDTO используется и при создании, и при обновлении:
// обновление полностью заменяет изменяемые поля, частичных патчей нет.
type OfficeRequestDTO struct {
	City                string `json:"city" validate:"required"`
	Street              string `json:"street" validate:"required"`
	HouseNumber         string `json:"houseNumber" validate:"required"`
	OfficeNumber        string `json:"officeNumber"`
	PhotoID             string `json:"photoId"`
	RegistryPhoneNumber string `json:"registryPhoneNumber" validate:"required,startswith=+"`
	IsActive            bool   `json:"isActive"`
}

type OfficeResponseDTO struct {
	ID                  string `json:"id"`
	City                string `json:"city"`
	Street              string `json:"street"`
	HouseNumber         string `json:"houseNumber"`
	OfficeNumber        string `json:"officeNumber"`
	Longitude           string `json:"longitude"`
	Latitude            string `json:"latitude"`
	PhotoID             string `json:"photoId,omitempty"`
	RegistryPhoneNumber string `json:"registryPhoneNumber"`
	IsActive            bool   `json:"isActive"`
}
