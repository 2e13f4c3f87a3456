package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/GustavoEngSoft/CRM-Family/internal/api/acompanhamento"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/comunicacao"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/dashboard"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/evento"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/mensagem"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/pessoa"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/relatorio"
	"github.com/GustavoEngSoft/CRM-Family/internal/api/usuario"
	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/cache"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Pessoa         *pessoa.Handler
	Comunicacao    *comunicacao.Handler
	Acompanhamento *acompanhamento.Handler
	Evento         *evento.Handler
	Usuario        *usuario.Handler
	Relatorio      *relatorio.Handler
	Dashboard      *dashboard.Handler
	Mensagem       *mensagem.Handler
}

// Options são os parâmetros de borda do roteador.
type Options struct {
	CORSOrigins     []string
	LoginRateLimit  int
	LoginRatePeriod time.Duration
}

// HealthResponse é a resposta de GET /health.
type HealthResponse struct {
	Status    string    `json:"status" example:"ok"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRouter configura e retorna o roteador HTTP principal.
// cacheClient pode ser nil: o login fica sem rate limiting.
func NewRouter(h Handlers, auth *middleware.Auth, cacheClient cache.Client, opts Options, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares Globais ---
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.PrometheusMetrics)

	// --- 2. Rotas Operacionais ---
	r.Get("/health", HealthHandler(log))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	loginLimiter := func(next http.Handler) http.Handler { return next }
	if cacheClient != nil {
		loginLimiter = middleware.RateLimiter(cacheClient, opts.LoginRateLimit, opts.LoginRatePeriod, "login", log)
	}

	// --- 3. API ---
	r.Route("/api", func(r chi.Router) {
		r.Route("/pessoas", func(r chi.Router) {
			r.Get("/", h.Pessoa.ListHandler)
			r.Post("/", h.Pessoa.CreateHandler)
			r.Get("/tag/{tag}", h.Pessoa.ListByTagHandler)
			r.Get("/tags/estatisticas", h.Pessoa.TagStatsHandler)
			r.Get("/{id}", h.Pessoa.GetHandler)
			r.Put("/{id}", h.Pessoa.UpdateHandler)
			r.Delete("/{id}", h.Pessoa.DeleteHandler)
		})

		r.Route("/comunicacao", func(r chi.Router) {
			r.Get("/", h.Comunicacao.ListHandler)
			r.Post("/", h.Comunicacao.CreateHandler)
			r.Get("/pessoa/{pessoaId}", h.Comunicacao.ListByPessoaHandler)
			r.Get("/{id}", h.Comunicacao.GetHandler)
			r.Put("/{id}", h.Comunicacao.UpdateHandler)
			r.Delete("/{id}", h.Comunicacao.DeleteHandler)
		})

		r.Route("/acompanhamento", func(r chi.Router) {
			r.Get("/", h.Acompanhamento.ListHandler)
			r.Post("/", h.Acompanhamento.CreateHandler)
			r.Get("/pessoa/{pessoaId}", h.Acompanhamento.ListByPessoaHandler)
			r.Get("/{id}", h.Acompanhamento.GetHandler)
			r.Put("/{id}", h.Acompanhamento.UpdateHandler)
			r.Patch("/{id}/status", h.Acompanhamento.UpdateStatusHandler)
			r.Delete("/{id}", h.Acompanhamento.DeleteHandler)
		})

		r.Route("/eventos", func(r chi.Router) {
			r.Get("/", h.Evento.ListHandler)
			r.Post("/", h.Evento.CreateHandler)

			// Inscrições avulsas antes de /{id} para não serem capturadas como evento.
			r.Get("/inscricoes/{id}", h.Evento.GetInscricaoHandler)
			r.Put("/inscricoes/{id}", h.Evento.UpdateInscricaoHandler)
			r.Delete("/inscricoes/{id}", h.Evento.DeleteInscricaoHandler)

			r.Get("/{id}/inscricoes", h.Evento.InscricoesHandler)
			r.Post("/{id}/inscricoes", h.Evento.CreateInscricaoHandler)
			r.Get("/{id}/inscricoes/list", h.Evento.ListInscricoesHandler)

			r.Get("/{id}", h.Evento.GetHandler)
			r.Put("/{id}", h.Evento.UpdateHandler)
			r.Delete("/{id}", h.Evento.DeleteHandler)
		})

		r.Route("/login", func(r chi.Router) {
			r.With(loginLimiter).Post("/", h.Usuario.LoginHandler)
			r.With(loginLimiter).Post("/register", h.Usuario.RegisterHandler)
			r.With(auth.RequireAuth).Get("/me", h.Usuario.MeHandler)
			r.Get("/{id}", h.Usuario.GetHandler)
			r.With(auth.RequireAuth, auth.RequireSelfOrAdmin(func(r *http.Request) string {
				return chi.URLParam(r, "id")
			})).Put("/{id}", h.Usuario.UpdateHandler)
		})

		r.Route("/relatorios", func(r chi.Router) {
			r.Get("/", h.Relatorio.ListHandler)
			r.With(auth.OptionalAuth).Post("/", h.Relatorio.CreateHandler)
			r.With(auth.OptionalAuth).Post("/generate/{tipo}", h.Relatorio.GenerateHandler)

			for _, tipo := range []string{
				domain.ProjecaoMembros, domain.ProjecaoVisitantes, domain.ProjecaoObreiros,
				domain.ProjecaoComunicacoes, domain.ProjecaoAcompanhamentos,
			} {
				r.Get("/"+tipo, h.Relatorio.ProjectionHandler(tipo))
			}
			r.Get("/exportar/{tipo}", h.Relatorio.ExportHandler)

			r.Get("/{id}", h.Relatorio.GetHandler)
			r.Delete("/{id}", h.Relatorio.DeleteHandler)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.Dashboard.StatsHandler)
			r.Get("/categories", h.Dashboard.CategoriesHandler)
			r.Get("/crescimento-mensal", h.Dashboard.CrescimentoMensalHandler)
			r.Get("/acompanhamentos-diarios", h.Dashboard.AcompanhamentosDiariosHandler)
			r.Get("/atividade", h.Dashboard.AtividadeHandler)
		})

		r.With(auth.RequireAuth).Post("/email/enviar", h.Mensagem.EmailHandler)
		r.With(auth.RequireAuth).Post("/whatsapp/enviar", h.Mensagem.WhatsAppHandler)
	})

	return r
}

// HealthHandler responde ao health check.
// @Summary Health check
// @Tags operacional
// @Produce json
// @Success 200 {object} router.HealthResponse
// @Router /health [get]
func HealthHandler(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, log, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
	}
}
