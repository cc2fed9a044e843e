package get_availability

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Request сырые параметры запроса доступности
// Каждое поле опционально: пустая строка или не-число заменяется дефолтом,
// валидные значения зажимаются в безопасные границы (см. resolver.go)
type Request struct {
	DurationMinutes string // Длительность встречи в минутах
	SlotMinutes     string // Шаг курсора генерации слотов
	HorizonDays     string // Горизонт поиска в днях
	SlotLimit       string // Максимум слотов в ответе
	MinLeadMinutes  string // Минимальный отступ от "сейчас" до первого слота
}

// Response результат расчёта доступности
type Response struct {
	GeneratedAt     time.Time         // Момент формирования ответа
	DurationMinutes int               // Итоговая длительность встречи
	SlotMinutes     int               // Итоговый шаг курсора
	HorizonDays     int               // Итоговый горизонт
	Slots           []domain.FreeSlot // Слоты в порядке возрастания начала
}
