package pessoa

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// PessoaService define o contrato que o Handler espera da camada de Serviço.
type PessoaService interface {
	List(ctx context.Context, tag string, page domain.PageRequest) (domain.Page[domain.Pessoa], error)
	ListByTag(ctx context.Context, tag string) ([]domain.Pessoa, error)
	TagStats(ctx context.Context) ([]domain.TagStat, error)
	Get(ctx context.Context, id string) (domain.Pessoa, error)
	Create(ctx context.Context, in domain.PessoaInput) (domain.Pessoa, error)
	Update(ctx context.Context, id string, p domain.PessoaPatch) (domain.Pessoa, error)
	Delete(ctx context.Context, id string) (domain.Pessoa, error)
}

// Handler agrupa todos os métodos de Handler de pessoas.
type Handler struct {
	Service PessoaService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PessoaService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// ListHandler lida com GET /api/pessoas.
// @Summary Lista pessoas ativas
// @Description Lista paginada de pessoas ativas, mais recentes primeiro. ?tag= restringe a uma tag.
// @Tags pessoas
// @Produce json
// @Param page query int false "Página (padrão 1)"
// @Param limit query int false "Itens por página (padrão 10, máximo 100)"
// @Param tag query string false "Tag"
// @Success 200 {object} domain.Page[domain.Pessoa]
// @Failure 500 {object} domain.ErrorResponse
// @Router /pessoas [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.List(r.Context(), r.URL.Query().Get("tag"), httpx.PageFromQuery(r))
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// ListByTagHandler lida com GET /api/pessoas/tag/{tag}.
// @Summary Lista pessoas ativas com a tag
// @Tags pessoas
// @Produce json
// @Param tag path string true "Tag (ex.: Membros)"
// @Success 200 {array} domain.Pessoa
// @Failure 400 {object} domain.ErrorResponse
// @Router /pessoas/tag/{tag} [get]
func (h *Handler) ListByTagHandler(w http.ResponseWriter, r *http.Request) {
	// chi entrega o segmento ainda codificado quando a URL tem acentos (RawPath).
	tag := chi.URLParam(r, "tag")
	if unescaped, err := url.PathUnescape(tag); err == nil {
		tag = unescaped
	}
	list, err := h.Service.ListByTag(r.Context(), tag)
	httpx.Respond(w, r, h.Logger, list, err, http.StatusOK)
}

// TagStatsHandler lida com GET /api/pessoas/tags/estatisticas.
// @Summary Estatísticas por categoria
// @Description Para cada tag de categoria: pessoas ativas e quantas entraram no mês corrente.
// @Tags pessoas
// @Produce json
// @Success 200 {array} domain.TagStat
// @Router /pessoas/tags/estatisticas [get]
func (h *Handler) TagStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.TagStats(r.Context())
	httpx.Respond(w, r, h.Logger, stats, err, http.StatusOK)
}

// GetHandler lida com GET /api/pessoas/{id}.
// @Summary Busca pessoa por ID
// @Description Pessoas desativadas continuam acessíveis por id.
// @Tags pessoas
// @Produce json
// @Param id path string true "ID da pessoa"
// @Success 200 {object} domain.Pessoa
// @Failure 404 {object} domain.ErrorResponse "Pessoa não encontrada"
// @Router /pessoas/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, p, err, http.StatusOK)
}

// CreateHandler lida com POST /api/pessoas.
// @Summary Cadastra pessoa
// @Tags pessoas
// @Accept json
// @Produce json
// @Param pessoa body domain.PessoaInput true "Dados da pessoa"
// @Success 201 {object} domain.Pessoa
// @Failure 400 {object} domain.ErrorResponse "nome ausente ou email inválido"
// @Router /pessoas [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.PessoaInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	p, err := h.Service.Create(r.Context(), in)
	httpx.Respond(w, r, h.Logger, p, err, http.StatusCreated)
}

// UpdateHandler lida com PUT /api/pessoas/{id}.
// @Summary Atualiza pessoa
// @Description Apenas os campos enviados são alterados.
// @Tags pessoas
// @Accept json
// @Produce json
// @Param id path string true "ID da pessoa"
// @Param pessoa body domain.PessoaPatch true "Campos a alterar"
// @Success 200 {object} domain.Pessoa
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /pessoas/{id} [put]
func (h *Handler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	var patch domain.PessoaPatch
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	p, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), patch)
	httpx.Respond(w, r, h.Logger, p, err, http.StatusOK)
}

// DeleteHandler lida com DELETE /api/pessoas/{id} (exclusão lógica).
// @Summary Desativa pessoa
// @Tags pessoas
// @Produce json
// @Param id path string true "ID da pessoa"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /pessoas/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	p, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Pessoa deletada com sucesso", Data: p}, err, http.StatusOK)
}
