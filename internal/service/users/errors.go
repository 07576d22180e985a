package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь с таким телефоном не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при пустом телефоне или имени
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("service: internal error")
)
