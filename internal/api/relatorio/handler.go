package relatorio

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/export"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/middleware"
)

// RelatorioService define o contrato que o Handler espera da camada de Serviço.
type RelatorioService interface {
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Relatorio], error)
	Get(ctx context.Context, id string) (domain.Relatorio, error)
	Create(ctx context.Context, in domain.RelatorioInput) (domain.Relatorio, error)
	Delete(ctx context.Context, id string) (domain.Relatorio, error)
	Generate(ctx context.Context, tipo string, req domain.GerarRelatorioRequest, usuarioID *string) (domain.RelatorioGerado, error)
	Projection(ctx context.Context, tipo string) (domain.Projecao, error)
	Export(ctx context.Context, tipo string) ([]byte, string, error)
}

// Handler agrupa os métodos de Handler de relatórios.
type Handler struct {
	Service RelatorioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc RelatorioService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// owner devolve o id do usuário quando a requisição veio autenticada (OptionalAuth).
func owner(r *http.Request) *string {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		return nil
	}
	id := claims.UserID
	return &id
}

// ListHandler lida com GET /api/relatorios.
// @Summary Lista relatórios registrados
// @Tags relatorios
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} domain.Page[domain.Relatorio]
// @Router /relatorios [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	page, err := h.Service.List(r.Context(), httpx.PageFromQuery(r))
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// GetHandler lida com GET /api/relatorios/{id}.
// @Summary Busca relatório por ID
// @Tags relatorios
// @Produce json
// @Param id path string true "ID do relatório"
// @Success 200 {object} domain.Relatorio
// @Failure 404 {object} domain.ErrorResponse
// @Router /relatorios/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	rel, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, rel, err, http.StatusOK)
}

// CreateHandler lida com POST /api/relatorios.
// @Summary Registra relatório manualmente
// @Tags relatorios
// @Accept json
// @Produce json
// @Param relatorio body domain.RelatorioInput true "Relatório"
// @Success 201 {object} domain.Relatorio
// @Failure 400 {object} domain.ErrorResponse
// @Router /relatorios [post]
func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var in domain.RelatorioInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	if in.UsuarioID == nil {
		in.UsuarioID = owner(r)
	}
	rel, err := h.Service.Create(r.Context(), in)
	httpx.Respond(w, r, h.Logger, rel, err, http.StatusCreated)
}

// DeleteHandler lida com DELETE /api/relatorios/{id}.
// @Summary Remove relatório
// @Tags relatorios
// @Produce json
// @Param id path string true "ID do relatório"
// @Success 200 {object} domain.MessageResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /relatorios/{id} [delete]
func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	rel, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	httpx.Respond(w, r, h.Logger, domain.MessageResponse{Message: "Relatório deletado com sucesso", Data: rel}, err, http.StatusOK)
}

// GenerateHandler lida com POST /api/relatorios/generate/{tipo}.
// Corpo vazio é aceito: gera com título padrão e sem filtro.
// @Summary Gera e registra relatório
// @Tags relatorios
// @Accept json
// @Produce json
// @Param tipo path string true "pessoas, comunicacoes ou acompanhamentos"
// @Param pedido body domain.GerarRelatorioRequest false "Título e filtro"
// @Success 201 {object} domain.RelatorioGerado
// @Failure 400 {object} domain.ErrorResponse
// @Router /relatorios/generate/{tipo} [post]
func (h *Handler) GenerateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.GerarRelatorioRequest
	if r.ContentLength != 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, h.Logger, err)
			return
		}
	}
	out, err := h.Service.Generate(r.Context(), chi.URLParam(r, "tipo"), req, owner(r))
	httpx.Respond(w, r, h.Logger, out, err, http.StatusCreated)
}

// ProjectionHandler devolve a consulta somente leitura do tipo fixo, sem registrar relatório.
// @Summary Consulta somente leitura
// @Tags relatorios
// @Produce json
// @Success 200 {object} domain.Projecao
// @Router /relatorios/membros [get]
// @Router /relatorios/visitantes [get]
// @Router /relatorios/obreiros [get]
// @Router /relatorios/comunicacoes [get]
// @Router /relatorios/acompanhamentos [get]
func (h *Handler) ProjectionHandler(tipo string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := h.Service.Projection(r.Context(), tipo)
		httpx.Respond(w, r, h.Logger, p, err, http.StatusOK)
	}
}

// ExportHandler lida com GET /api/relatorios/exportar/{tipo}.
// @Summary Exporta a consulta como planilha
// @Tags relatorios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tipo path string true "membros, visitantes, obreiros, comunicacoes ou acompanhamentos"
// @Success 200 {file} file
// @Failure 404 {object} domain.ErrorResponse
// @Router /relatorios/exportar/{tipo} [get]
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	raw, filename, err := h.Service.Export(r.Context(), chi.URLParam(r, "tipo"))
	if err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(raw)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		h.Logger.Warn("Falha ao enviar planilha.", map[string]interface{}{"arquivo": filename, "error": err.Error()})
	}
}
