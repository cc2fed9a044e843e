package voicecall

import "errors"

var (
	// ErrQuotaExceeded возвращается, когда провайдер сигнализирует об исчерпании
	// квоты или лимита одновременных звонков
	ErrQuotaExceeded = errors.New("voicecall client: quota or limit exceeded")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("voicecall client: invalid phone number")

	// ErrUnauthorized возвращается при некорректном API ключе
	ErrUnauthorized = errors.New("voicecall client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("voicecall client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("voicecall client: invalid response")
)
