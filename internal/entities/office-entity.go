package entities

type Office struct {
	ID                  string `json:"id" bson:"_id"`
	City                string `json:"city" bson:"city"`
	Street              string `json:"street" bson:"street"`
	HouseNumber         string `json:"houseNumber" bson:"house_number"`
	OfficeNumber        string `json:"officeNumber" bson:"office_number"`
	Longitude           string `json:"longitude" bson:"longitude"`
	Latitude            string `json:"latitude" bson:"latitude"`
	PhotoID             string `json:"photoId,omitempty" bson:"photo_id,omitempty"`
	RegistryPhoneNumber string `json:"registryPhoneNumber" bson:"registry_phone_number"`
	IsActive            bool   `json:"isActive" bson:"is_active"`
}

// OfficeEvent — проекция офиса для брокера: без координат и фотографии.
type OfficeEvent struct {
	ID                  string `json:"id"`
	City                string `json:"city"`
	Street              string `json:"street"`
	HouseNumber         string `json:"houseNumber"`
	OfficeNumber        string `json:"officeNumber"`
	RegistryPhoneNumber string `json:"registryPhoneNumber"`
	IsActive            bool   `json:"isActive"`
}

func (o *Office) ToEvent() OfficeEvent {
	return OfficeEvent{
		ID:                  o.ID,
		City:                o.City,
		Street:              o.Street,
		HouseNumber:         o.HouseNumber,
		OfficeNumber:        o.OfficeNumber,
		RegistryPhoneNumber: o.RegistryPhoneNumber,
		IsActive:            o.IsActive,
	}
}
