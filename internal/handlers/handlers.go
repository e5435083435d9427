package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	httpmetrics "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/avelarde/recargas/docs"
	"github.com/avelarde/recargas/internal/domain"
	authhandlers "github.com/avelarde/recargas/internal/handlers/auth"
	recargahandlers "github.com/avelarde/recargas/internal/handlers/recarga"
	wallethandlers "github.com/avelarde/recargas/internal/handlers/wallet"
	"github.com/avelarde/recargas/internal/service"
	"github.com/avelarde/recargas/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type RecargaHandler interface {
	Solicitar(w http.ResponseWriter, r *http.Request)
	GetSolicitudes(w http.ResponseWriter, r *http.Request)
	Verificar(w http.ResponseWriter, r *http.Request)
	Rechazar(w http.ResponseWriter, r *http.Request)
	Rehabilitar(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetMovements(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	RecargaHandler RecargaHandler
	WalletHandler  WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		RecargaHandler: recargahandlers.New(s.RechargeService, s.RateService),
		WalletHandler:  wallethandlers.New(s.LedgerService, s.RateService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	mdlw := httpmetrics.New(httpmetrics.Config{
		Recorder: metrics.NewRecorder(metrics.Config{}),
	})

	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		func(next http.Handler) http.Handler {
			return std.Handler("", mdlw, next)
		},
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/api/rates/convert", h.WalletHandler.Convert)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/recargas", func(r chi.Router) {
				r.Post("/", h.RecargaHandler.Solicitar)
				r.Get("/", h.RecargaHandler.GetSolicitudes)
				r.Post("/{id}/rehabilitar", h.RecargaHandler.Rehabilitar)
			})
			r.Route("/wallets/{currency}", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Get("/movimientos", h.WalletHandler.GetMovements)
			})
		})
	})

	r.Route("/api/recargas", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.RequireGroup(domain.GroupVerificador))
		r.Post("/{id}/verificar", h.RecargaHandler.Verificar)
		r.Post("/{id}/rechazar", h.RecargaHandler.Rechazar)
	})

	return r
}
