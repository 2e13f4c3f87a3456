package evento

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// EventoService define o contrato que o Handler espera da camada de Serviço.
type EventoService interface {
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Evento], error)
	Get(ctx context.Context, id string) (domain.Evento, error)
	Create(ctx context.Context, in domain.EventoInput) (domain.Evento, error)
	Update(ctx context.Context, id string, p domain.EventoPatch) (domain.Evento, error)
	Delete(ctx context.Context, id string) (domain.Evento, error)
	Inscricoes(ctx context.Context, eventoID string) (domain.EventoInscricoes, error)
	ListInscricoes(ctx context.Context, eventoID string) ([]domain.Inscricao, error)
	CreateInscricao(ctx context.Context, eventoID string, in domain.InscricaoInput) (domain.Inscricao, error)
	GetInscricao(ctx context.Context, id string) (domain.Inscricao, error)
	UpdateInscricao(ctx context.Context, id string, p domain.InscricaoPatch) (domain.Inscricao, error)
	DeleteInscricao(ctx context.Context, id string) (domain.Inscricao, error)
}

// Handler agrupa os métodos de Handler de eventos e inscrições.
type Handler struct {
	Service EventoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc EventoService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListHandler lida com GET /api/eventos.
// @Summary Lista eventos ativos
// @Tags eventos
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} domain.Page[domain.Evento]
// @Router /eventos [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.List(r.Context(), httpx.PageFromQuery(r))
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// GetHandler lida com GET /api/eventos/{id}.
// @Summary Busca evento por ID
// @Tags eventos
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} domain.Evento
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, e, err, http.StatusOK)
}

// CreateHandler lida com POST /api/eventos.
// @Summary Cria evento
// @Tags eventos
// @Accept json
// @Produce json
// @Param evento body domain.EventoInput true "Evento"
// @Success 201 {object} domain.Evento
// @Failure 400 {object} domain.ErrorResponse
// @Router /eventos [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.EventoInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	e, err := h.Service.Create(r.Context(), in)
	httpx.Respond(w, r, h.Logger, e, err, http.StatusCreated)
}

// UpdateHandler lida com PUT /api/eventos/{id}.
// @Summary Atualiza evento
// @Tags eventos
// @Accept json
// @Produce json
// @Param id path string true "ID do evento"
// @Param evento body domain.EventoPatch true "Campos a alterar"
// @Success 200 {object} domain.Evento
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.EventoPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	e, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	httpx.Respond(w, r, h.Logger, e, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /api/eventos/{id}. Exclusão lógica.
// @Summary Desativa evento
// @Tags eventos
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	e, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Evento deletado com sucesso", Data: e}, err, http.StatusOK)
}

// InscricoesHandler lida com GET /api/eventos/{id}/inscricoes: o evento e suas inscrições ativas.
// @Summary Evento com inscrições
// @Tags eventos
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {object} domain.EventoInscricoes
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/{id}/inscricoes [get]
func (h *Handler) InscricoesHandler(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Inscricoes(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// ListInscricoesHandler lida com GET /api/eventos/{id}/inscricoes/list.
// @Summary Lista inscrições do evento
// @Tags inscricoes
// @Produce json
// @Param id path string true "ID do evento"
// @Success 200 {array} domain.Inscricao
// @Router /eventos/{id}/inscricoes/list [get]
func (h *Handler) ListInscricoesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.ListInscricoes(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}

// CreateInscricaoHandler lida com POST /api/eventos/{id}/inscricoes.
// @Summary Inscreve participante
// @Tags inscricoes
// @Accept json
// @Produce json
// @Param id path string true "ID do evento"
// @Param inscricao body domain.InscricaoInput true "Inscrição"
// @Success 201 {object} domain.Inscricao
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/{id}/inscricoes [post]
func (h *Handler) CreateInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.InscricaoInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	i, err := h.Service.CreateInscricao(r.Context(), chi.URLParam(r, "id"), in)
	httpx.Respond(w, r, h.Logger, i, err, http.StatusCreated)
}

// GetInscricaoHandler lida com GET /api/eventos/inscricoes/{id}.
// @Summary Busca inscrição
// @Tags inscricoes
// @Produce json
// @Param id path string true "ID da inscrição"
// @Success 200 {object} domain.Inscricao
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/inscricoes/{id} [get]
func (h *Handler) GetInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	i, err := h.Service.GetInscricao(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, i, err, http.StatusOK)
}

// UpdateInscricaoHandler lida com PUT /api/eventos/inscricoes/{id}.
// @Summary Atualiza inscrição
// @Tags inscricoes
// @Accept json
// @Produce json
// @Param id path string true "ID da inscrição"
// @Param inscricao body domain.InscricaoPatch true "Campos a alterar"
// @Success 200 {object} domain.Inscricao
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/inscricoes/{id} [put]
func (h *Handler) UpdateInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.InscricaoPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	i, err := h.Service.UpdateInscricao(r.Context(), chi.URLParam(r, "id"), patch)
	httpx.Respond(w, r, h.Logger, i, err, http.StatusOK)
}

// DeleteInscricaoHandler lida com DELETE /api/eventos/inscricoes/{id}.
// @Summary Remove inscrição
// @Tags inscricoes
// @Produce json
// @Param id path string true "ID da inscrição"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /eventos/inscricoes/{id} [delete]
func (h *Handler) DeleteInscricaoHandler(w http.ResponseWriter, r *http.Request) {
	i, err := h.Service.DeleteInscricao(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Inscrição removida com sucesso", Data: i}, err, http.StatusOK)
}
