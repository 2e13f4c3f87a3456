package acompanhamento

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// AcompanhamentoService define o contrato que o Handler espera da camada de Serviço.
type AcompanhamentoService interface {
	List(ctx context.Context, f domain.AcompanhamentoFilter, page domain.PageRequest) (domain.Page[domain.Acompanhamento], error)
	ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Acompanhamento, error)
	Get(ctx context.Context, id string) (domain.Acompanhamento, error)
	Create(ctx context.Context, in domain.AcompanhamentoInput) (domain.Acompanhamento, error)
	Update(ctx context.Context, id string, p domain.AcompanhamentoPatch) (domain.Acompanhamento, error)
	UpdateStatus(ctx context.Context, id string, req domain.StatusUpdate) (domain.Acompanhamento, error)
	Delete(ctx context.Context, id string) (domain.Acompanhamento, error)
}

// Handler agrupa os métodos de Handler de acompanhamentos.
type Handler struct {
	Service AcompanhamentoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc AcompanhamentoService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListHandler lida com GET /api/acompanhamento.
// @Summary Lista acompanhamentos
// @Tags acompanhamento
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param status query string false "pending, in-progress ou done"
// @Param prioridade query string false "low, medium ou high"
// @Param pessoa_id query string false "ID da pessoa"
// @Success 200 {object} domain.Page[domain.Acompanhamento]
// @Router /acompanhamento [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.AcompanhamentoFilter{Status: q.Get("status"), Prioridade: q.Get("prioridade"), PessoaID: q.Get("pessoa_id")}
	page, err := h.Service.List(r.Context(), f, httpx.PageFromQuery(r))
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// ListByPessoaHandler lida com GET /api/acompanhamento/pessoa/{pessoaId}.
// @Summary Acompanhamentos da pessoa
// @Tags acompanhamento
// @Produce json
// @Param pessoaId path string true "ID da pessoa"
// @Success 200 {array} domain.Acompanhamento
// @Router /acompanhamento/pessoa/{pessoaId} [get]
func (h *Handler) ListByPessoaHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByPessoa(r.Context(), chi.URLParam(r, "pessoaId"))
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}

// GetHandler lida com GET /api/acompanhamento/{id}.
// @Summary Busca acompanhamento por ID
// @Tags acompanhamento
// @Produce json
// @Param id path string true "ID do acompanhamento"
// @Success 200 {object} domain.Acompanhamento
// @Failure 404 {object} domain.ErrorResponse
// @Router /acompanhamento/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, a, err, http.StatusOK)
}

// CreateHandler lida com POST /api/acompanhamento.
// @Summary Cria acompanhamento
// @Description titulo é obrigatório; status padrão pending; prioridade padrão medium.
// @Tags acompanhamento
// @Accept json
// @Produce json
// @Param acompanhamento body domain.AcompanhamentoInput true "Acompanhamento"
// @Success 201 {object} domain.Acompanhamento
// @Failure 400 {object} domain.ErrorResponse
// @Router /acompanhamento [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.AcompanhamentoInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	a, err := h.Service.Create(r.Context(), in)
	httpx.Respond(w, r, h.Logger, a, err, http.StatusCreated)
}

// UpdateHandler lida com PUT /api/acompanhamento/{id}.
// @Summary Atualiza acompanhamento
// @Tags acompanhamento
// @Accept json
// @Produce json
// @Param id path string true "ID do acompanhamento"
// @Param acompanhamento body domain.AcompanhamentoPatch true "Campos a alterar"
// @Success 200 {object} domain.Acompanhamento
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /acompanhamento/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.AcompanhamentoPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	a, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	httpx.Respond(w, r, h.Logger, a, err, http.StatusOK)
}

// UpdateStatusHandler lida com PATCH /api/acompanhamento/{id}/status (kanban).
// @Summary Move o cartão no kanban
// @Tags acompanhamento
// @Accept json
// @Produce json
// @Param id path string true "ID do acompanhamento"
// @Param status body domain.StatusUpdate true "Novo status"
// @Success 200 {object} domain.Acompanhamento
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /acompanhamento/{id}/status [patch]
func (h *Handler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.StatusUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	a, err := h.Service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	httpx.Respond(w, r, h.Logger, a, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /api/acompanhamento/{id}.
// @Summary Remove acompanhamento
// @Tags acompanhamento
// @Produce json
// @Param id path string true "ID do acompanhamento"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /acompanhamento/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	a, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Acompanhamento deletado com sucesso", Data: a}, err, http.StatusOK)
}
