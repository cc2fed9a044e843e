package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var (
	// ErrDisabled возвращается, когда почтовые уведомления выключены в конфигурации
	ErrDisabled = errors.New("mailer: disabled by configuration")

	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer: failed to send message")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Mailer отправляет служебные уведомления по SMTP
// Используется только для алертов об исчерпании квоты провайдера звонков
type Mailer struct {
	enabled  bool
	host     string
	port     int
	username string
	password string
	from     string
	to       string
	log      Logger
}

// New создает новый экземпляр Mailer
func New(enabled bool, host string, port int, username, password, from, to string, log Logger) *Mailer {
	return &Mailer{
		enabled:  enabled,
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		to:       to,
		log:      log,
	}
}

// SendQuotaAlert отправляет уведомление об исчерпании квоты провайдера звонков
func (m *Mailer) SendQuotaAlert(reason string) error {
	if !m.enabled {
		return ErrDisabled
	}

	subject := "SMC-OutreachService: voice call quota exceeded"
	body := fmt.Sprintf(
		"The voice-call provider reported a quota/limit condition.\n\nDetails: %s\n\nOutbound calling is paused until the quota is restored.",
		reason,
	)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + m.to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{m.to}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	m.log.Info("Quota alert email sent to %s", m.to)
	return nil
}
