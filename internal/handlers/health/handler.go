package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"todoapp/config"
	"todoapp/infras/otel"
	"todoapp/internal/domains/todo/service"
	"todoapp/shared/constant"
	"todoapp/transport/http/response"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	redisConnected    = "connected"
	redisDisconnected = "disconnected"
)

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

type Handler struct {
	service service.Todo
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Todo, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/health", handler.HealthCheck)
}

// Root reports basic service metadata.
// @Summary Service metadata
// @Tags Health
// @Produce json
// @Success 200 {object} health.RootResponse
// @Router / [get]
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, RootResponse{
		Message: handler.cfg.App.Name,
		Version: handler.cfg.App.Version,
		Docs:    "/docs",
	})
}

// HealthCheck reports backend connectivity. A failing probe is reported as
// an unhealthy status, never as an error response body.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} health.HealthResponse
// @Failure 503 {object} health.HealthResponse
// @Router /health [get]
func (handler *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HealthCheck")
	defer scope.End()

	res := HealthResponse{
		Status: statusHealthy,
		Redis:  redisConnected,
	}

	code := http.StatusOK
	if !handler.service.HealthCheck(ctx) {
		res.Status = statusUnhealthy
		res.Redis = redisDisconnected
		code = http.StatusServiceUnavailable
	}

	response.WithJSON(w, code, res)
}
