package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createMeetingHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/create_meeting"
	deleteLeadHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/delete_lead"
	deleteMeetingHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/delete_meeting"
	getAvailabilityHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/get_availability"
	listLeadsHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/list_leads"
	listMeetingsHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/list_meetings"
	scanBusinessesHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/scan_businesses"
	searchCitiesHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/search_cities"
	startCallHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/start_call"
	updateLeadHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/update_lead"
	updateMeetingHandler "github.com/m04kA/SMC-OutreachService/internal/api/handlers/update_meeting"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
	"github.com/m04kA/SMC-OutreachService/internal/config"
	"github.com/m04kA/SMC-OutreachService/internal/domain"
	leadsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/leads"
	meetingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/meetings"
	calendarClient "github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
	directoryClient "github.com/m04kA/SMC-OutreachService/internal/integrations/directory"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/mailer"
	voicecallClient "github.com/m04kA/SMC-OutreachService/internal/integrations/voicecall"
	leadsService "github.com/m04kA/SMC-OutreachService/internal/service/leads"
	meetingsService "github.com/m04kA/SMC-OutreachService/internal/service/meetings"
	getAvailabilityUC "github.com/m04kA/SMC-OutreachService/internal/usecase/get_availability"
	scanBusinessesUC "github.com/m04kA/SMC-OutreachService/internal/usecase/scan_businesses"
	startCallUC "github.com/m04kA/SMC-OutreachService/internal/usecase/start_call"
	"github.com/m04kA/SMC-OutreachService/pkg/httpmetrics"
	"github.com/m04kA/SMC-OutreachService/pkg/logger"
	"github.com/m04kA/SMC-OutreachService/pkg/metrics"
)

// leadsGaugeInterval период обновления gauge количества лидов в хранилище
const leadsGaugeInterval = 30 * time.Second

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-OutreachService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем JSON хранилища
	leadRepository := leadsRepo.NewRepository(cfg.Storage.LeadsFile)
	meetingRepository := meetingsRepo.NewRepository(cfg.Storage.MeetingsFile)
	log.Info("JSON storage initialized (leads=%s, meetings=%s)",
		cfg.Storage.LeadsFile, cfg.Storage.MeetingsFile)

	// Инициализируем интеграционных клиентов
	// При включённых метриках каждый клиент оборачивается транспортом,
	// собирающим длительность и исход внешних вызовов
	var directoryTransport, voiceTransport, calendarTransport http.RoundTripper
	if cfg.Metrics.Enabled {
		directoryTransport = httpmetrics.NewTransport(metricsCollector, "directory", nil)
		voiceTransport = httpmetrics.NewTransport(metricsCollector, "voicecall", nil)
		calendarTransport = httpmetrics.NewTransport(metricsCollector, "calendar", nil)
	}

	directory := directoryClient.NewClient(
		cfg.DirectoryAPI.URL,
		cfg.DirectoryAPI.APIKey,
		cfg.DirectoryAPI.PageSize,
		time.Duration(cfg.DirectoryAPI.Timeout)*time.Second,
		directoryTransport,
		log,
	)
	voice := voicecallClient.NewClient(
		cfg.VoiceAPI.URL,
		cfg.VoiceAPI.APIKey,
		cfg.VoiceAPI.AgentID,
		cfg.VoiceAPI.PhoneNumberID,
		time.Duration(cfg.VoiceAPI.Timeout)*time.Second,
		voiceTransport,
		log,
	)
	calendar := calendarClient.NewClient(
		cfg.Calendar.URL,
		cfg.Calendar.Token,
		cfg.Calendar.DatabaseID,
		cfg.Calendar.PageSize,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		calendarTransport,
		log,
	)
	alertMailer := mailer.New(
		cfg.SMTP.Enabled,
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.To,
		log,
	)
	log.Info("Integration clients initialized (directory=%s, voice=%s, calendar=%s, smtp_enabled=%t)",
		cfg.DirectoryAPI.URL, cfg.VoiceAPI.URL, cfg.Calendar.URL, cfg.SMTP.Enabled)

	// Инициализируем сервисы
	leadsSvc := leadsService.NewService(leadRepository, log)
	meetingsSvc := meetingsService.NewService(meetingRepository, log)

	// Инициализируем use cases
	availabilityDefaults := domain.AvailabilityParams{
		DurationMinutes: cfg.Availability.DefaultDurationMinutes,
		SlotMinutes:     cfg.Availability.DefaultSlotMinutes,
		HorizonDays:     cfg.Availability.DefaultHorizonDays,
		SlotLimit:       cfg.Availability.DefaultSlotLimit,
		MinLeadMinutes:  cfg.Availability.DefaultMinLeadMinutes,
		WorkStartHour:   cfg.Availability.WorkStartHour,
		WorkEndHour:     cfg.Availability.WorkEndHour,
	}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		meetingRepository,
		calendar,
		availabilityDefaults,
		log,
	)
	scanBusinessesUseCase := scanBusinessesUC.NewUseCase(
		directory,
		leadRepository,
		log,
	)
	startCallUseCase := startCallUC.NewUseCase(
		leadRepository,
		voice,
		alertMailer,
		log,
	)

	// Инициализируем handlers
	var slotsObserver getAvailabilityHandler.SlotsObserver
	if cfg.Metrics.Enabled {
		slotsObserver = metricsCollector
	}

	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, slotsObserver, log)
	scanBusinesses := scanBusinessesHandler.NewHandler(scanBusinessesUseCase, log)
	searchCities := searchCitiesHandler.NewHandler(directory, log)
	listLeads := listLeadsHandler.NewHandler(leadsSvc, log)
	updateLead := updateLeadHandler.NewHandler(leadsSvc, log)
	deleteLead := deleteLeadHandler.NewHandler(leadsSvc, log)
	startCall := startCallHandler.NewHandler(startCallUseCase, log)
	createMeeting := createMeetingHandler.NewHandler(meetingsSvc, log)
	listMeetings := listMeetingsHandler.NewHandler(meetingsSvc, log)
	updateMeeting := updateMeetingHandler.NewHandler(meetingsSvc, log)
	deleteMeeting := deleteMeetingHandler.NewHandler(meetingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)

		// Периодически обновляем gauge количества лидов
		go func() {
			ticker := time.NewTicker(leadsGaugeInterval)
			defer ticker.Stop()
			for {
				select {
				case <-stopMetricsCh:
					return
				case <-ticker.C:
					count, err := leadRepository.Count(context.Background())
					if err != nil {
						log.Warn("Failed to count leads for metrics: %v", err)
						continue
					}
					metricsCollector.SetLeadsStored(count)
				}
			}
		}()
		log.Info("Lead count gauge collection started")
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Доступность ---
	// Расчёт свободных слотов для бронирования встреч
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// --- Поиск лидов ---
	// Сканирование области на бизнесы без настоящего сайта
	api.HandleFunc("/scans", scanBusinesses.Handle).Methods(http.MethodPost)

	// Поиск городов для выбора центра сканирования
	api.HandleFunc("/cities", searchCities.Handle).Methods(http.MethodGet)

	// --- Лиды ---
	api.HandleFunc("/leads", listLeads.Handle).Methods(http.MethodGet)
	api.HandleFunc("/leads/{leadId}", updateLead.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/leads/{leadId}", deleteLead.Handle).Methods(http.MethodDelete)

	// Инициация исходящего звонка лиду
	api.HandleFunc("/leads/{leadId}/call", startCall.Handle).Methods(http.MethodPost)

	// --- Встречи ---
	api.HandleFunc("/meetings", createMeeting.Handle).Methods(http.MethodPost)
	api.HandleFunc("/meetings", listMeetings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/meetings/{meetingId}", updateMeeting.Handle).Methods(http.MethodPut)
	api.HandleFunc("/meetings/{meetingId}", deleteMeeting.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновый сбор метрик
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
