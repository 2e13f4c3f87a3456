package dashboard

import (
	"context"
	"net/http"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// DashboardService define o contrato que o Handler espera da camada de Serviço.
type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Categories(ctx context.Context) ([]domain.CategoriaStats, error)
	CrescimentoMensal(ctx context.Context) ([]domain.PontoMensal, error)
	AcompanhamentosDiarios(ctx context.Context) ([]domain.PontoDiario, error)
	Atividade(ctx context.Context) (domain.Atividade, error)
}

// Handler agrupa os endpoints do painel.
type Handler struct {
	Service DashboardService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc DashboardService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// StatsHandler lida com GET /api/dashboard/stats.
// @Summary Indicadores dos últimos 30 dias
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /dashboard/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Stats(r.Context())
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// CategoriesHandler lida com GET /api/dashboard/categories.
// @Summary Crescimento por categoria
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.CategoriaStats
// @Router /dashboard/categories [get]
func (h *Handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Categories(r.Context())
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// CrescimentoMensalHandler lida com GET /api/dashboard/crescimento-mensal.
// @Summary Novas pessoas por mês (6 meses)
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.PontoMensal
// @Router /dashboard/crescimento-mensal [get]
func (h *Handler) CrescimentoMensalHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.CrescimentoMensal(r.Context())
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// AcompanhamentosDiariosHandler lida com GET /api/dashboard/acompanhamentos-diarios.
// @Summary Acompanhamentos concluídos por dia (10 dias)
// @Tags dashboard
// @Produce json
// @Success 200 {array} domain.PontoDiario
// @Router /dashboard/acompanhamentos-diarios [get]
func (h *Handler) AcompanhamentosDiariosHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.AcompanhamentosDiarios(r.Context())
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// AtividadeHandler lida com GET /api/dashboard/atividade.
// @Summary Pessoas engajadas nos últimos 30 dias
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Atividade
// @Router /dashboard/atividade [get]
func (h *Handler) AtividadeHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Atividade(r.Context())
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}
