package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь с таким телефоном не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	ErrBuildQuery = errors.New("user.repository: failed to build query")
	ErrExecQuery  = errors.New("user.repository: failed to execute query")
	ErrScanRow    = errors.New("user.repository: failed to scan row")
)
