package meetings

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда встреча не найдена
	ErrMeetingNotFound = errors.New("meetings.repository: meeting not found")

	// ErrReadFile возвращается при ошибке чтения файла хранилища
	ErrReadFile = errors.New("meetings.repository: failed to read store file")

	// ErrWriteFile возвращается при ошибке записи файла хранилища
	ErrWriteFile = errors.New("meetings.repository: failed to write store file")

	// ErrDecodeFile возвращается, когда файл хранилища содержит некорректный JSON
	ErrDecodeFile = errors.New("meetings.repository: failed to decode store file")
)
