package voicecall

// StartCallRequest параметры исходящего звонка
type StartCallRequest struct {
	PhoneNumber  string // Номер клиента в формате E.164
	BusinessName string // Название бизнеса, подставляется в скрипт агента
	City         string
}

// Call результат инициации звонка у провайдера
type Call struct {
	ID     string
	Status string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// apiCallRequest тело запроса к провайдеру голосовых звонков
type apiCallRequest struct {
	AssistantID        string             `json:"assistantId"`
	PhoneNumberID      string             `json:"phoneNumberId"`
	Customer           apiCustomer        `json:"customer"`
	AssistantOverrides *apiAssistantOverrides `json:"assistantOverrides,omitempty"`
}

type apiCustomer struct {
	Number string `json:"number"`
	Name   string `json:"name,omitempty"`
}

type apiAssistantOverrides struct {
	VariableValues map[string]string `json:"variableValues,omitempty"`
}

// apiCallResponse ответ провайдера на инициацию звонка
type apiCallResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки провайдера
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
