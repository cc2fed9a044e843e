package calendar

// Event событие внешнего календаря
// Start и End - сырые ISO-8601 строки, парсинг выполняется адаптером движка доступности
type Event struct {
	Title string
	Start string
	End   *string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// queryRequest тело постраничного запроса к базе календаря
type queryRequest struct {
	PageSize    int     `json:"page_size"`
	StartCursor *string `json:"start_cursor,omitempty"`
}

// queryResponse страница результатов запроса
type queryResponse struct {
	Results    []pageObject `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

// pageObject запись базы календаря
type pageObject struct {
	ID         string         `json:"id"`
	Properties pageProperties `json:"properties"`
}

// pageProperties свойства записи: название и дата
type pageProperties struct {
	Name dateTitleProperty `json:"Name"`
	Date datePropertyValue `json:"Date"`
}

// dateTitleProperty свойство-заголовок (список rich-text фрагментов)
type dateTitleProperty struct {
	Title []richText `json:"title"`
}

type richText struct {
	PlainText string `json:"plain_text"`
}

// datePropertyValue свойство-дата с необязательным концом
type datePropertyValue struct {
	Date *dateValue `json:"date"`
}

type dateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

// ErrorResponse модель ошибки календарного API
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
