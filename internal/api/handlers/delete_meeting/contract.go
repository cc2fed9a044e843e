package delete_meeting

import (
	"context"
)

type MeetingsService interface {
	Delete(ctx context.Context, meetingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
