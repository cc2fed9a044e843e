package scan_businesses

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDirectoryUnavailable возвращается, когда справочник бизнесов недоступен
	ErrDirectoryUnavailable = errors.New("business directory unavailable")

	// ErrDirectoryQuota возвращается при исчерпании квоты справочника
	ErrDirectoryQuota = errors.New("business directory quota exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
