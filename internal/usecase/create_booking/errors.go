package create_booking

import "errors"

var (
	// ErrInvalidSlot возвращается, когда timeSlotId вне дневного расписания
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректной дате, гараже или клиенте
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другой бронью
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrDataSource оборачивает ошибки хранилища, исходное сообщение сохраняется
	ErrDataSource = errors.New("create_booking: data source failure")
)

// Причины отказа для метрик
const (
	reasonInvalidSlot   = "invalid_slot"
	reasonInvalidInput  = "invalid_input"
	reasonAlreadyBooked = "slot_already_booked"
	reasonDataSource    = "data_source"
)
