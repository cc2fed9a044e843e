package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты (API ключи, пароль SMTP) можно переопределить переменными окружения
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Storage      StorageConfig      `toml:"storage"`
	DirectoryAPI DirectoryAPIConfig `toml:"directory_api"`
	VoiceAPI     VoiceAPIConfig     `toml:"voice_api"`
	Calendar     CalendarConfig     `toml:"calendar"`
	SMTP         SMTPConfig         `toml:"smtp"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig пути к JSON файлам хранилищ
type StorageConfig struct {
	LeadsFile    string `toml:"leads_file"`
	MeetingsFile string `toml:"meetings_file"`
}

// DirectoryAPIConfig настройки клиента справочника бизнесов
type DirectoryAPIConfig struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Timeout  int    `toml:"timeout"` // секунды
	PageSize int    `toml:"page_size"`
}

// VoiceAPIConfig настройки провайдера голосовых звонков
type VoiceAPIConfig struct {
	URL           string `toml:"url"`
	APIKey        string `toml:"api_key"`
	AgentID       string `toml:"agent_id"`
	PhoneNumberID string `toml:"phone_number_id"`
	Timeout       int    `toml:"timeout"` // секунды
}

// CalendarConfig настройки внешнего календаря (read-only)
type CalendarConfig struct {
	URL        string `toml:"url"`
	Token      string `toml:"token"`
	DatabaseID string `toml:"database_id"`
	PageSize   int    `toml:"page_size"`
	Timeout    int    `toml:"timeout"` // секунды
}

// SMTPConfig настройки почтовых уведомлений о квотах
type SMTPConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
	To       string `toml:"to"`
}

// AvailabilityConfig дефолты движка доступности (уровень окружения)
// Рабочие часы задаются ТОЛЬКО здесь, клиент их переопределить не может
type AvailabilityConfig struct {
	WorkStartHour          int `toml:"work_start_hour"`
	WorkEndHour            int `toml:"work_end_hour"`
	DefaultDurationMinutes int `toml:"default_duration_minutes"`
	DefaultSlotMinutes     int `toml:"default_slot_minutes"`
	DefaultHorizonDays     int `toml:"default_horizon_days"`
	DefaultSlotLimit       int `toml:"default_slot_limit"`
	DefaultMinLeadMinutes  int `toml:"default_min_lead_minutes"`
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides переопределяет секреты из переменных окружения
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DIRECTORY_API_KEY"); v != "" {
		cfg.DirectoryAPI.APIKey = v
	}
	if v := os.Getenv("VOICE_API_KEY"); v != "" {
		cfg.VoiceAPI.APIKey = v
	}
	if v := os.Getenv("CALENDAR_TOKEN"); v != "" {
		cfg.Calendar.Token = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
}

// validate проверяет обязательные поля конфигурации
func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Storage.LeadsFile == "" {
		return fmt.Errorf("config: storage.leads_file is required")
	}
	if c.Storage.MeetingsFile == "" {
		return fmt.Errorf("config: storage.meetings_file is required")
	}
	return nil
}
