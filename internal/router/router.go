package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/NikolasPires/mind-flow/internal/auth"
	"github.com/NikolasPires/mind-flow/internal/config"
	"github.com/NikolasPires/mind-flow/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	pacienteHandler *handler.PacienteHandler,
	profileHandler *handler.ProfileHandler,
	consultaHandler *handler.ConsultaHandler,
	transcricaoHandler *handler.TranscricaoHandler,
	dashboardHandler *handler.DashboardHandler,
	suggestionHandler *handler.SuggestionHandler,
	exportHandler *handler.ExportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/users/paciente", userHandler.RegisterPaciente)
	api.POST("/users/psicologo", userHandler.RegisterPsicologo)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	// Profile routes
	secured.GET("/users/me", profileHandler.Me)
	secured.PATCH("/users/me", profileHandler.UpdateMe)

	// Patient roster routes (professional only)
	secured.GET("/users/patients", userHandler.ListPatients)
	secured.POST("/users/patients", userHandler.CreatePatient)
	secured.GET("/users/paciente/:id", userHandler.GetPatient)
	secured.PATCH("/patients/:id", pacienteHandler.Update)
	secured.GET("/patients/export", exportHandler.PatientRoster)

	// Appointment routes
	secured.POST("/consultas", consultaHandler.Create)
	secured.GET("/consultas/:id", consultaHandler.Get)
	secured.PATCH("/consultas/:id", consultaHandler.Update)
	secured.DELETE("/consultas/:id", consultaHandler.Delete)
	secured.GET("/patients/:id/consultas", consultaHandler.ListByPaciente)

	// Transcription routes
	secured.POST("/transcricoes", transcricaoHandler.Create)
	secured.GET("/transcricoes/:id", transcricaoHandler.Get)
	secured.PATCH("/transcricoes/:id", transcricaoHandler.Update)
	secured.DELETE("/transcricoes/:id", transcricaoHandler.Delete)

	// Dashboard and AI routes (professional only)
	secured.GET("/dashboard/summary", dashboardHandler.Summary)
	secured.POST("/suggestions", suggestionHandler.Generate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
