package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате или пустом id гаража
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrDataSource оборачивает ошибки хранилища и потока изменений, исходное сообщение сохраняется
	ErrDataSource = errors.New("get_available_slots: data source failure")
)
