package scan_businesses

import "github.com/m04kA/SMC-OutreachService/internal/domain"

// Request параметры сканирования области
type Request struct {
	Latitude     float64 // Центр области
	Longitude    float64
	RadiusMeters float64 // Радиус поиска в метрах
	Category     string  // Тип бизнеса справочника (опционально)
	City         string  // Название города, сохраняется в лидах для фильтрации
}

// Response результат сканирования
type Response struct {
	Leads      []*domain.Lead // Лиды без настоящего сайта, найденные сканом
	TotalFound int            // Всего бизнесов вернул справочник
	NewLeads   int            // Впервые попали в хранилище
	KnownLeads int            // Уже были в хранилище (состояние обзвона сохранено)
}
