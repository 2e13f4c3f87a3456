package comunicacao

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// ComunicacaoService define o contrato que o Handler espera da camada de Serviço.
type ComunicacaoService interface {
	List(ctx context.Context, f domain.ComunicacaoFilter, page domain.PageRequest) (domain.Page[domain.Comunicacao], error)
	ListByPessoa(ctx context.Context, pessoaID string) ([]domain.Comunicacao, error)
	Get(ctx context.Context, id string) (domain.Comunicacao, error)
	Create(ctx context.Context, in domain.ComunicacaoInput) (domain.Comunicacao, error)
	Update(ctx context.Context, id string, p domain.ComunicacaoPatch) (domain.Comunicacao, error)
	Delete(ctx context.Context, id string) (domain.Comunicacao, error)
}

// Handler agrupa os métodos de Handler de comunicações.
type Handler struct {
	Service ComunicacaoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc ComunicacaoService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListHandler lida com GET /api/comunicacao.
// @Summary Lista comunicações
// @Tags comunicacao
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Param status query string false "Status (pending, sent, cancelled)"
// @Param tipo query string false "Canal (email, sms, whatsapp, call)"
// @Success 200 {object} domain.Page[domain.Comunicacao]
// @Router /comunicacao [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.ComunicacaoFilter{Status: q.Get("status"), Tipo: q.Get("tipo")}
	page, err := h.Service.List(r.Context(), f, httpx.PageFromQuery(r))
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// ListByPessoaHandler lida com GET /api/comunicacao/pessoa/{pessoaId}.
// @Summary Histórico de comunicações da pessoa
// @Tags comunicacao
// @Produce json
// @Param pessoaId path string true "ID da pessoa"
// @Success 200 {array} domain.Comunicacao
// @Router /comunicacao/pessoa/{pessoaId} [get]
func (h *Handler) ListByPessoaHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListByPessoa(r.Context(), chi.URLParam(r, "pessoaId"))
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}

// GetHandler lida com GET /api/comunicacao/{id}.
// @Summary Busca comunicação por ID
// @Tags comunicacao
// @Produce json
// @Param id path string true "ID da comunicação"
// @Success 200 {object} domain.Comunicacao
// @Failure 404 {object} domain.ErrorResponse
// @Router /comunicacao/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, c, err, http.StatusOK)
}

// CreateHandler lida com POST /api/comunicacao.
// @Summary Registra comunicação
// @Description pessoa_id e tipo são obrigatórios; status padrão pending; data_comunicacao padrão agora.
// @Tags comunicacao
// @Accept json
// @Produce json
// @Param comunicacao body domain.ComunicacaoInput true "Comunicação"
// @Success 201 {object} domain.Comunicacao
// @Failure 400 {object} domain.ErrorResponse
// @Router /comunicacao [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.ComunicacaoInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	c, err := h.Service.Create(r.Context(), in)
	httpx.Respond(w, r, h.Logger, c, err, http.StatusCreated)
}

// UpdateHandler lida com PUT /api/comunicacao/{id}.
// @Summary Atualiza comunicação
// @Tags comunicacao
// @Accept json
// @Produce json
// @Param id path string true "ID da comunicação"
// @Param comunicacao body domain.ComunicacaoPatch true "Campos a alterar"
// @Success 200 {object} domain.Comunicacao
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /comunicacao/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.ComunicacaoPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	c, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	httpx.Respond(w, r, h.Logger, c, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /api/comunicacao/{id}.
// @Summary Remove comunicação
// @Tags comunicacao
// @Produce json
// @Param id path string true "ID da comunicação"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /comunicacao/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Comunicação deletada com sucesso", Data: c}, err, http.StatusOK)
}
