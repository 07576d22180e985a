package sessions

import "errors"

var (
	// ErrUnauthorized возвращается для неизвестных, истёкших и отозванных токенов
	ErrUnauthorized = errors.New("session not found or expired")

	// ErrUserNotFound возвращается при входе с незарегистрированным телефоном
	ErrUserNotFound = errors.New("user not found")

	// ErrGarageNotFound возвращается, когда выбранного гаража нет в городе
	ErrGarageNotFound = errors.New("garage not found in city")

	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("service: internal error")
)
