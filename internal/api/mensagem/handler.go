package mensagem

import (
	"context"
	"net/http"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/httpx"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// MensagemService define o contrato que o Handler espera da camada de Serviço.
type MensagemService interface {
	SendEmail(ctx context.Context, req domain.EmailRequest) (domain.EnvioResultado, error)
	SendWhatsApp(ctx context.Context, req domain.WhatsAppRequest) (domain.EnvioResultado, error)
}

// Handler agrupa os envios de email e WhatsApp.
type Handler struct {
	Service MensagemService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler.
func NewHandler(svc MensagemService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// EmailHandler lida com POST /api/email/enviar.
// @Summary Envia email
// @Description Sem SMTP configurado (ou com falha do provedor) o envio é simulado e responde 200 com simulated=true.
// @Tags mensagens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body domain.EmailRequest true "Email"
// @Success 200 {object} domain.EnvioResultado
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /email/enviar [post]
func (h *Handler) EmailHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.EmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	out, err := h.Service.SendEmail(r.Context(), req)
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}

// WhatsAppHandler lida com POST /api/whatsapp/enviar.
// @Summary Envia WhatsApp
// @Description O telefone é normalizado para dígitos com prefixo 55. Sem Twilio configurado o envio é simulado.
// @Tags mensagens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param whatsapp body domain.WhatsAppRequest true "Mensagem"
// @Success 200 {object} domain.EnvioResultado
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /whatsapp/enviar [post]
func (h *Handler) WhatsAppHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.WhatsAppRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.Logger, err)
		return
	}
	out, err := h.Service.SendWhatsApp(r.Context(), req)
	httpx.Respond(w, r, h.Logger, out, err, http.StatusOK)
}
