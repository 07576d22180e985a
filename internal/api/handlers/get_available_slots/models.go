package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/OtoCare-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date     string          `json:"date"`
	GarageID string          `json:"garageId"`
	Slots    []AvailableSlot `json:"slots"`
}

// AvailableSlot слот дня и признак того, что его ещё можно забронировать
type AvailableSlot struct {
	ID        int    `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse преобразует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:        slot.ID,
			Label:     slot.Label,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:     resp.Date,
		GarageID: resp.GarageID,
		Slots:    slots,
	}
}

// ToUseCaseRequest собирает запрос use case из параметров пути и запроса
func ToUseCaseRequest(garageID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:     date,
		GarageID: garageID,
	}
}
