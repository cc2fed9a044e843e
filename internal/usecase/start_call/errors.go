package start_call

import "errors"

var (
	// ErrLeadNotFound возвращается, когда лид не найден
	ErrLeadNotFound = errors.New("lead not found")

	// ErrLeadNotCallable возвращается, когда лиду нельзя звонить
	// (звонок уже идёт, встреча назначена или лид отказался)
	ErrLeadNotCallable = errors.New("lead is not callable")

	// ErrNoPhoneNumber возвращается, когда у лида нет номера телефона
	ErrNoPhoneNumber = errors.New("lead has no phone number")

	// ErrQuotaExceeded возвращается при исчерпании квоты провайдера звонков
	ErrQuotaExceeded = errors.New("voice call quota exceeded")

	// ErrProviderUnavailable возвращается при прочих отказах провайдера звонков
	ErrProviderUnavailable = errors.New("voice call provider unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
