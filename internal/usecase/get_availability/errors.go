package get_availability

import "errors"

var (
	// ErrWorkHoursMisconfigured возвращается, когда конец рабочего дня
	// не позже его начала (ошибка конфигурации сервера, не данных)
	ErrWorkHoursMisconfigured = errors.New("work hours misconfigured: end hour must be after start hour")

	// ErrMeetingSourceUnavailable возвращается при недоступности хранилища встреч
	// Встречи - обязательный источник: угадывать пустой результат нельзя,
	// это привело бы к двойному бронированию
	ErrMeetingSourceUnavailable = errors.New("meeting store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
