package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageCreator é a parte do cliente Twilio usada no envio.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender envia mensagens de WhatsApp pela API do Twilio.
type TwilioSender struct {
	api  MessageCreator
	from string
}

// NewTwilioSender cria o remetente com as credenciais da conta.
func NewTwilioSender(accountSID, authToken, phoneNumber string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return NewTwilioSenderWithAPI(client.Api, phoneNumber)
}

// NewTwilioSenderWithAPI cria o remetente sobre um MessageCreator já construído.
func NewTwilioSenderWithAPI(api MessageCreator, phoneNumber string) *TwilioSender {
	return &TwilioSender{api: api, from: "whatsapp:" + phoneNumber}
}

// SendWhatsApp envia body para o telefone e devolve o SID da mensagem.
func (s *TwilioSender) SendWhatsApp(ctx context.Context, phone, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + NormalizePhone(phone))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("falha no envio via Twilio: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// NormalizePhone mantém só os dígitos e garante o prefixo 55 (Brasil).
func NormalizePhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return digits
}
