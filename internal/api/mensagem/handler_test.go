package mensagem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

type MockMensagemService struct {
	mock.Mock
}

func (m *MockMensagemService) SendEmail(ctx context.Context, req domain.EmailRequest) (domain.EnvioResultado, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.EnvioResultado), args.Error(1)
}

func (m *MockMensagemService) SendWhatsApp(ctx context.Context, req domain.WhatsAppRequest) (domain.EnvioResultado, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.EnvioResultado), args.Error(1)
}

func TestEmailHandler_Simulated(t *testing.T) {
	svc := new(MockMensagemService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("SendEmail", mock.Anything, domain.EmailRequest{Para: "ana@email.com", Assunto: "Oi", Corpo: "Olá"}).
		Return(domain.EnvioResultado{Success: true, Simulated: true, Message: "Email simulado"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/email/enviar", strings.NewReader(`{"para":"ana@email.com","assunto":"Oi","corpo":"Olá"}`))
	rec := httptest.NewRecorder()
	h.EmailHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"simulated":true`)
}

func TestWhatsAppHandler_ValidationError(t *testing.T) {
	svc := new(MockMensagemService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("SendWhatsApp", mock.Anything, mock.Anything).
		Return(domain.EnvioResultado{}, apperror.NewValidationError("Telefone e mensagem são obrigatórios"))

	req := httptest.NewRequest(http.MethodPost, "/api/whatsapp/enviar", strings.NewReader(`{"telefone":"11988887777"}`))
	rec := httptest.NewRecorder()
	h.WhatsAppHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Telefone e mensagem são obrigatórios"}`, rec.Body.String())
}

func TestWhatsAppHandler_EmptyBody(t *testing.T) {
	svc := new(MockMensagemService)
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.WhatsAppHandler(rec, httptest.NewRequest(http.MethodPost, "/api/whatsapp/enviar", strings.NewReader("")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "SendWhatsApp", mock.Anything, mock.Anything)
}
