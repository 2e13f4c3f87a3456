package mensagemservice

import (
	"context"
	"strings"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/metrics"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/validation"
)

// Mensagens devolvidas ao cliente.
const (
	MsgEmailEnviado          = "Email enviado com sucesso"
	MsgEmailSimulado         = "Email registrado com sucesso (modo simulação)"
	MsgEmailFalhaSimulado    = "Email registrado (modo simulação)"
	MsgWhatsAppEnviado       = "Mensagem WhatsApp enviada com sucesso"
	MsgWhatsAppSimulado      = "Mensagem WhatsApp registrada com sucesso (modo simulação)"
	MsgWhatsAppFalhaSimulado = "Mensagem WhatsApp registrada (modo simulação)"
)

// Rótulos da métrica de mensagens.
const (
	modeSent      = "sent"
	modeSimulated = "simulated"
)

// EmailSender entrega emails (internal/pkg/notify.SMTPSender).
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) (string, error)
}

// WhatsAppSender entrega mensagens de WhatsApp (internal/pkg/notify.TwilioSender).
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, phone, body string) (string, error)
}

// ComunicacaoRecorder registra a comunicação no histórico da pessoa.
type ComunicacaoRecorder interface {
	Create(ctx context.Context, in domain.ComunicacaoInput) (domain.Comunicacao, error)
}

// Service envia emails e mensagens de WhatsApp. Sem provedor configurado, ou se o provedor falhar,
// o envio é simulado e a resposta continua sendo sucesso.
type Service struct {
	email     EmailSender
	whatsapp  WhatsAppSender
	recorder  ComunicacaoRecorder
	validator *validation.Validator
	logger    logger.Logger
}

// NewService cria o serviço. email e whatsapp podem ser nil (provedor não configurado).
func NewService(email EmailSender, whatsapp WhatsAppSender, recorder ComunicacaoRecorder, v *validation.Validator, log logger.Logger) *Service {
	return &Service{email: email, whatsapp: whatsapp, recorder: recorder, validator: v, logger: log}
}

// SendEmail envia o email e, se houver pessoa_id, registra a comunicação.
func (s *Service) SendEmail(ctx context.Context, req domain.EmailRequest) (domain.EnvioResultado, error) {
	// 1. Validação
	req.PessoaID = domain.BlankToNil(req.PessoaID)
	if strings.TrimSpace(req.Para) == "" || strings.TrimSpace(req.Assunto) == "" || strings.TrimSpace(req.Corpo) == "" {
		return domain.EnvioResultado{}, apperror.NewValidationError("para, assunto e corpo são obrigatórios")
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.EnvioResultado{}, err
	}

	simulated := map[string]interface{}{"para": req.Para, "assunto": req.Assunto, "corpo": req.Corpo}

	// 2. Envio (ou simulação)
	var out domain.EnvioResultado
	switch {
	case s.email == nil:
		s.logger.Warn("SMTP não configurado. Modo simulação ativado.", map[string]interface{}{"para": req.Para})
		out = domain.EnvioResultado{Success: true, Simulated: true, Message: MsgEmailSimulado, Data: simulated}
	default:
		messageID, err := s.email.SendEmail(ctx, req.Para, req.Assunto, req.Corpo)
		if err != nil {
			s.logger.Warn("Erro ao usar SMTP, modo simulação.", map[string]interface{}{"para": req.Para, "error": err.Error()})
			out = domain.EnvioResultado{Success: true, Simulated: true, Message: MsgEmailFalhaSimulado, Data: simulated}
		} else {
			s.logger.Info("Email enviado com sucesso.", map[string]interface{}{"message_id": messageID})
			out = domain.EnvioResultado{Success: true, Message: MsgEmailEnviado, Data: map[string]interface{}{"messageId": messageID}}
		}
	}
	countMessage(domain.CanalEmail, out)

	// 3. Histórico
	assunto, corpo := req.Assunto, req.Corpo
	s.record(ctx, req.PessoaID, domain.CanalEmail, &assunto, &corpo, out)
	return out, nil
}

// SendWhatsApp envia a mensagem e, se houver pessoa_id, registra a comunicação.
func (s *Service) SendWhatsApp(ctx context.Context, req domain.WhatsAppRequest) (domain.EnvioResultado, error) {
	// 1. Validação
	req.PessoaID = domain.BlankToNil(req.PessoaID)
	if strings.TrimSpace(req.Telefone) == "" || strings.TrimSpace(req.Mensagem) == "" {
		return domain.EnvioResultado{}, apperror.NewValidationError("telefone e mensagem são obrigatórios")
	}
	if err := s.validator.Struct(req); err != nil {
		return domain.EnvioResultado{}, err
	}

	simulated := map[string]interface{}{"telefone": req.Telefone, "mensagem": req.Mensagem}

	// 2. Envio (ou simulação)
	var out domain.EnvioResultado
	switch {
	case s.whatsapp == nil:
		s.logger.Warn("Twilio não configurado. Modo simulação ativado.", map[string]interface{}{"telefone": req.Telefone})
		out = domain.EnvioResultado{Success: true, Simulated: true, Message: MsgWhatsAppSimulado, Data: simulated}
	default:
		sid, err := s.whatsapp.SendWhatsApp(ctx, req.Telefone, req.Mensagem)
		if err != nil {
			s.logger.Warn("Erro ao usar Twilio, modo simulação.", map[string]interface{}{"telefone": req.Telefone, "error": err.Error()})
			out = domain.EnvioResultado{Success: true, Simulated: true, Message: MsgWhatsAppFalhaSimulado, Data: simulated}
		} else {
			s.logger.Info("WhatsApp enviado com sucesso.", map[string]interface{}{"sid": sid})
			out = domain.EnvioResultado{Success: true, Message: MsgWhatsAppEnviado, Data: map[string]interface{}{"messageSid": sid}}
		}
	}
	countMessage(domain.CanalWhatsApp, out)

	// 3. Histórico
	mensagem := req.Mensagem
	s.record(ctx, req.PessoaID, domain.CanalWhatsApp, nil, &mensagem, out)
	return out, nil
}

// record grava a comunicação: sent quando entregue, pending quando simulada.
// Uma falha aqui não desfaz o envio; fica apenas no log.
func (s *Service) record(ctx context.Context, pessoaID *string, canal string, assunto, mensagem *string, out domain.EnvioResultado) {
	if pessoaID == nil || s.recorder == nil {
		return
	}

	status := domain.ComunicacaoSent
	if out.Simulated {
		status = domain.ComunicacaoPending
	}

	c, err := s.recorder.Create(ctx, domain.ComunicacaoInput{
		PessoaID: *pessoaID,
		Tipo:     canal,
		Assunto:  assunto,
		Mensagem: mensagem,
		Status:   status,
	})
	if err != nil {
		s.logger.Warn("Falha ao registrar comunicação do envio.", map[string]interface{}{"pessoa_id": *pessoaID, "canal": canal, "error": err.Error()})
		return
	}
	s.logger.Debug("Comunicação registrada para o envio.", map[string]interface{}{"id": c.ID, "canal": canal})
}

func countMessage(channel string, out domain.EnvioResultado) {
	mode := modeSent
	if out.Simulated {
		mode = modeSimulated
	}
	metrics.MessagesSent.WithLabelValues(channel, mode).Inc()
}
