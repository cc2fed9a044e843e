package get_availability

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
)

// UseCase use case расчёта свободных слотов для бронирования встреч
// Объединяет занятость из двух источников: хранилище встреч (обязательный)
// и внешний календарь (опциональный, с graceful degradation)
type UseCase struct {
	meetingRepo    MeetingRepository
	calendarClient CalendarClient
	defaults       domain.AvailabilityParams
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	meetingRepo MeetingRepository,
	calendarClient CalendarClient,
	defaults domain.AvailabilityParams,
	logger Logger,
) *UseCase {
	return &UseCase{
		meetingRepo:    meetingRepo,
		calendarClient: calendarClient,
		defaults:       defaults,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разрешаем и зажимаем параметры запроса
	params, err := resolveParams(req, uc.defaults)
	if err != nil {
		uc.logger.Error("GetAvailability: configuration error: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: duration=%dm, slot=%dm, horizon=%dd, limit=%d, lead=%dm, work=%d:00-%d:00",
		params.DurationMinutes, params.SlotMinutes, params.HorizonDays,
		params.SlotLimit, params.MinLeadMinutes, params.WorkStartHour, params.WorkEndHour)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Опрашиваем оба источника занятости параллельно (fan-out/fan-in)
	var (
		wg           sync.WaitGroup
		meetings     []*domain.Meeting
		meetingsErr  error
		calendarEvts []calendar.Event
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		meetings, meetingsErr = uc.meetingRepo.List(ctx)
	}()

	go func() {
		defer wg.Done()
		// Отказ календаря гасится здесь же: движок продолжает работу
		// только с интервалами встреч
		events, err := uc.calendarClient.FetchEventsWithGracefulDegradation(ctx, 0)
		if err != nil {
			uc.logger.Warn("GetAvailability: calendar source degraded, proceeding without it: %v", err)
			return
		}
		calendarEvts = events
	}()

	wg.Wait()

	// 4. Отказ хранилища встреч фатален: недосчитанные локальные встречи
	// привели бы к предложению занятых слотов
	if meetingsErr != nil {
		uc.logger.Error("GetAvailability: meeting store read failed: %v", meetingsErr)
		return nil, fmt.Errorf("%w: %v", ErrMeetingSourceUnavailable, meetingsErr)
	}

	// 5. Конвертируем записи источников в занятые интервалы и склеиваем
	// Дедупликация между источниками не выполняется: лишние интервалы
	// могут только сузить доступность, но не расширить её
	intervals := meetingsToIntervals(meetings)
	intervals = append(intervals, eventsToIntervals(calendarEvts)...)

	// 6. Группируем интервалы по локальным дням
	index := buildDayIndex(intervals)

	// 7. Генерируем свободные слоты по горизонту
	slots := generateSlots(params, index, now)

	uc.logger.Info("GetAvailability: generated %d slots from %d busy intervals (%d meetings, %d calendar events)",
		len(slots), len(intervals), len(meetings), len(calendarEvts))

	// 8. Собираем ответ
	return &Response{
		GeneratedAt:     now,
		DurationMinutes: params.DurationMinutes,
		SlotMinutes:     params.SlotMinutes,
		HorizonDays:     params.HorizonDays,
		Slots:           slots,
	}, nil
}
