// Package httpx concentra a escrita de respostas JSON, a decodificação de payloads e a leitura de paginação.
package httpx

import (
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/GustavoEngSoft/CRM-Family/internal/domain"
	apperror "github.com/GustavoEngSoft/CRM-Family/internal/errors"
	"github.com/GustavoEngSoft/CRM-Family/internal/pkg/logger"
)

// maxBodyBytes limita o tamanho dos payloads JSON aceitos.
const maxBodyBytes = 1 << 20

// WriteJSON escreve data como JSON com o status informado.
func WriteJSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// WriteError traduz err para {error: mensagem} com o status correspondente.
// Erros 5xx são registrados por completo; o cliente recebe mensagem genérica.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error("Erro de Servidor: "+category+" em "+r.Method+" "+r.URL.Path, err)
	} else {
		log.Debug("Requisição rejeitada.", map[string]interface{}{
			"status":   status,
			"category": category,
			"path":     r.URL.Path,
		})
	}

	WriteJSON(w, log, status, domain.ErrorResponse{Error: message})
}

// Respond escreve data com successStatus ou, se err != nil, o erro traduzido.
func Respond(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		WriteError(w, r, log, err)
		return
	}
	WriteJSON(w, log, successStatus, data)
}

// DecodeJSON lê o corpo da requisição em dest. Corpo vazio ou malformado vira ValidationError.
func DecodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Corpo da requisição é obrigatório.")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dest); err != nil {
		if err == io.EOF {
			return apperror.NewValidationError("Corpo da requisição é obrigatório.")
		}
		return apperror.NewValidationError("Payload JSON inválido.")
	}
	return nil
}

// PageFromQuery lê ?page= e ?limit=, aplicando os padrões para valores ausentes ou inválidos.
func PageFromQuery(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return domain.NewPageRequest(page, limit)
}
