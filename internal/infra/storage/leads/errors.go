package leads

import "errors"

var (
	// ErrLeadNotFound возвращается, когда лид не найден
	ErrLeadNotFound = errors.New("leads.repository: lead not found")

	// ErrReadFile возвращается при ошибке чтения файла хранилища
	ErrReadFile = errors.New("leads.repository: failed to read store file")

	// ErrWriteFile возвращается при ошибке записи файла хранилища
	ErrWriteFile = errors.New("leads.repository: failed to write store file")

	// ErrDecodeFile возвращается, когда файл хранилища содержит некорректный JSON
	ErrDecodeFile = errors.New("leads.repository: failed to decode store file")
)
