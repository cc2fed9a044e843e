package directory

import "errors"

var (
	// ErrUnauthorized возвращается при некорректном или отозванном API ключе
	ErrUnauthorized = errors.New("directory client: unauthorized")

	// ErrQuotaExceeded возвращается, когда справочник сигнализирует об исчерпании квоты
	ErrQuotaExceeded = errors.New("directory client: quota exceeded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
