package start_call

import "time"

// Request параметры инициации звонка
type Request struct {
	LeadID string
}

// Response результат инициации звонка
type Response struct {
	LeadID       string
	CallID       string
	CallStatus   string    // Статус звонка у провайдера
	LeadStatus   string    // Новый статус лида
	CallAttempts int       // Счётчик попыток после этого звонка
	StartedAt    time.Time
}
