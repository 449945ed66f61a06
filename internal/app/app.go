package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"actionlog/internal/api/http/handler"
	"actionlog/internal/api/http/route"
	"actionlog/internal/apperrors"
	"actionlog/internal/config"
	"actionlog/internal/model"
	"actionlog/internal/msg/notify"
	"actionlog/internal/service"
	"actionlog/pkg/kafka"
	"actionlog/pkg/llm"
	"actionlog/pkg/server"
	"actionlog/pkg/sheets"
)

type WebhookService interface {
	Process(ctx context.Context, event model.InboundEvent) (*model.ProcessResult, error)
}

type WebhookHandler interface {
	Receive(c *gin.Context)
}

type HealthHandler interface {
	Health(c *gin.Context)
	Ping(c *gin.Context)
}

type RootHandler interface {
	Index(c *gin.Context)
}

type App struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Handler    *Handler
	Service    *Service
	HTTPServer server.HTTPServer
	Producer   kafka.Producer
}

type Service struct {
	WebhookService    WebhookService
	ClassifierService service.Classifier
}

type Handler struct {
	WebhookHandler WebhookHandler
	HealthHandler  HealthHandler
	RootHandler    RootHandler
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	completer := initLLM(&cfg.LLM)
	log.Debug("LLM client initialized")

	sink := initSink(&cfg.Sink)
	log.Debug("Sink client initialized")

	producer, notifier, err := initNotifier(log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize notifier", zap.Error(err))
		return nil, fmt.Errorf("failed to initialize notifier: %w", err)
	}

	svc := initService(log, completer, sink, notifier)

	hdl := initHandler(log, cfg, svc)

	httpServer := initHTTPServer(log, cfg, hdl)

	return &App{
		Cfg:        cfg,
		Log:        log,
		Handler:    hdl,
		Service:    svc,
		HTTPServer: httpServer,
		Producer:   producer,
	}, nil
}

func MustNew(cfg *config.Config, log *zap.Logger) *App {
	app, err := New(cfg, log)
	if err != nil {
		panic(err)
	}
	return app
}

func (a *App) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	defer close(errs)

	go func() {
		if err := a.HTTPServer.Run(); err != nil {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *App) Shutdown() error {
	err := apperrors.ErrShutdown

	if srvErr := a.HTTPServer.Shutdown(); srvErr != nil {
		err = fmt.Errorf("%w, failed to shutdown http server: %w", err, srvErr)
	}

	a.Log.Debug("Http server shutdown")

	if a.Producer != nil {
		if prodErr := a.Producer.Close(); prodErr != nil {
			err = fmt.Errorf("%w, failed to close kafka producer: %w", err, prodErr)
		}

		a.Log.Debug("Kafka producer closed")
	}

	if !errors.Is(err, apperrors.ErrShutdown) {
		return err
	}

	return nil
}

func initLLM(cfg *config.LLM) llm.Completer {
	llmCfg := &llm.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.Timeout,
	}

	return llm.New(llmCfg)
}

func initSink(cfg *config.Sink) sheets.Appender {
	sheetsCfg := &sheets.Config{
		WebhookURL: cfg.WebhookURL,
		Timeout:    cfg.Timeout,
	}

	return sheets.New(sheetsCfg)
}

func initNotifier(log *zap.Logger, cfg *config.Kafka) (kafka.Producer, *notify.Notifier, error) {
	notifyCfg := notify.Config{
		Enabled: cfg.Enabled,
		Topic:   cfg.Topic,
	}

	if !cfg.Enabled {
		return nil, notify.NewNotifier(log, notifyCfg, nil), nil
	}

	producer, err := kafka.NewProducer(
		cfg.Brokers,
		kafka.WithBalancer(kafka.RoundRobin),
		kafka.WithRequiredAcks(kafka.RequireAll),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to init kafka producer: %w", err)
	}

	log.Debug("Kafka producer initialized")

	return producer, notify.NewNotifier(log, notifyCfg, producer), nil
}

func initService(log *zap.Logger, completer llm.Completer, sink sheets.Appender, notifier *notify.Notifier) *Service {
	classifierSvc := service.NewClassifierService(log, completer)
	log.Debug("Classifier service initialized")

	webhookSvc := service.NewWebhookService(log, classifierSvc, sink, notifier)
	log.Debug("Webhook service initialized")

	return &Service{
		WebhookService:    webhookSvc,
		ClassifierService: classifierSvc,
	}
}

func initHandler(log *zap.Logger, cfg *config.Config, svc *Service) *Handler {
	webhookHandler := handler.NewWebhookHandler(log, svc.WebhookService)
	log.Debug("Webhook handler initialized")

	healthHandler := handler.NewHealthHandler()
	log.Debug("Health handler initialized")

	rootHandler := handler.NewRootHandler(cfg.ServiceName, cfg.Version)
	log.Debug("Root handler initialized")

	return &Handler{
		WebhookHandler: webhookHandler,
		HealthHandler:  healthHandler,
		RootHandler:    rootHandler,
	}
}

func initHTTPServer(log *zap.Logger, cfg *config.Config, hdl *Handler) server.HTTPServer {
	router := route.SetupRouter(
		log,
		cfg,
		hdl.WebhookHandler,
		hdl.HealthHandler,
		hdl.RootHandler,
	)

	httpServer := server.NewHTTPServer(
		server.WithAddr(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		server.WithTimeout(cfg.HTTPServer.Timeout.Read, cfg.HTTPServer.Timeout.Write, cfg.HTTPServer.Timeout.Idle),
		server.WithHandler(router),
	)

	return httpServer
}
