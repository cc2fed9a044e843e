package calendar

import "errors"

var (
	// ErrUnauthorized возвращается при некорректном токене или отсутствии доступа к базе
	ErrUnauthorized = errors.New("calendar client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе календарного API
	ErrInvalidResponse = errors.New("calendar client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что календарь недоступен и движок доступности должен
	// продолжить работу без календарных интервалов
	ErrServiceDegraded = errors.New("calendar unavailable: graceful degradation applied")
)
