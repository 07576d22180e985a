package catalog

import "errors"

var (
	// ErrInvalidInput возвращается при пустом городе или неизвестном типе баннера
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("service: internal error")
)
