package main

import (
	"net/http"
	"strings"

	_ "github.com/NikolasPires/mind-flow/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/NikolasPires/mind-flow/internal/auth"
	"github.com/NikolasPires/mind-flow/internal/cache"
	"github.com/NikolasPires/mind-flow/internal/config"
	"github.com/NikolasPires/mind-flow/internal/db"
	"github.com/NikolasPires/mind-flow/internal/encryption"
	"github.com/NikolasPires/mind-flow/internal/handler"
	"github.com/NikolasPires/mind-flow/internal/mapper"
	"github.com/NikolasPires/mind-flow/internal/model"
	"github.com/NikolasPires/mind-flow/internal/repository"
	"github.com/NikolasPires/mind-flow/internal/router"
	"github.com/NikolasPires/mind-flow/internal/service"
	"github.com/NikolasPires/mind-flow/internal/storage"
	"github.com/NikolasPires/mind-flow/internal/suggest"
)

// @title MindFlow API
// @version 1.0
// @description Practice management API for mental-health professionals, with field-level encryption of patient data.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	keyring, err := encryption.ParseKeyring(cfg.EncryptionKeys)
	if err != nil {
		logger.Fatal("parse encryption keyring", zap.Error(err))
	}
	enc, err := encryption.NewService(keyring, cfg.EncryptionActiveKey)
	if err != nil {
		logger.Fatal("init encryption service", zap.Error(err))
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Paciente{},
		&model.Psicologo{},
		&model.Consulta{},
		&model.Transcricao{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	pacienteRepo := repository.NewPacienteRepository(gormDB)
	psicologoRepo := repository.NewPsicologoRepository(gormDB)
	consultaRepo := repository.NewConsultaRepository(gormDB)
	transcricaoRepo := repository.NewTranscricaoRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize mappers and external clients
	userMapper := mapper.NewUserMapper(enc, logger)
	pacienteMapper := mapper.NewPacienteMapper(enc, userMapper, logger)
	psicologoMapper := mapper.NewPsicologoMapper(enc, logger)
	photoClient := storage.NewClient(cfg.PhotoStorageURL, cfg.PhotoStorageKey, logger)
	suggestClient := suggest.NewClient(cfg.SuggestionURL, cfg.SuggestionKey, logger)

	// Initialize services
	registrationService := service.NewRegistrationService(userRepo, pacienteRepo, psicologoRepo, enc, userMapper, pacienteMapper, psicologoMapper)
	authService := service.NewAuthService(userRepo, enc, userMapper, jwtService, tokenStore)
	pacienteService := service.NewPacienteService(userRepo, pacienteRepo, enc, pacienteMapper, logger)
	profileService := service.NewProfileService(userRepo, psicologoRepo, enc, userMapper, pacienteMapper, psicologoMapper, photoClient, logger)
	consultaService := service.NewConsultaService(consultaRepo, pacienteRepo)
	transcricaoService := service.NewTranscricaoService(transcricaoRepo)
	dashboardService := service.NewDashboardService(consultaRepo, pacienteRepo, pacienteMapper, cacheClient, logger)
	exportService := service.NewExportService(pacienteService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(registrationService, pacienteService)
	pacienteHandler := handler.NewPacienteHandler(pacienteService)
	profileHandler := handler.NewProfileHandler(profileService)
	consultaHandler := handler.NewConsultaHandler(consultaService)
	transcricaoHandler := handler.NewTranscricaoHandler(transcricaoService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	suggestionHandler := handler.NewSuggestionHandler(suggestClient)
	exportHandler := handler.NewExportHandler(exportService)

	e := echo.New()
	e.Use(middleware.RequestID())

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		pacienteHandler,
		profileHandler,
		consultaHandler,
		transcricaoHandler,
		dashboardHandler,
		suggestionHandler,
		exportHandler,
	)

	// Log swagger full path
	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(swaggerHost, "http://") && !strings.HasPrefix(swaggerHost, "https://") {
		swaggerHost = "http://" + swaggerHost
	}
	logger.Info("swagger documentation available", zap.String("url", swaggerHost+"/swagger/index.html"))

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
