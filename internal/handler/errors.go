package handler

import (
	"net/http"
	"strings"

	"github.com/rsilveira/roteiros-api/internal/domain"
	"github.com/rsilveira/roteiros-api/internal/httpx"
)

// User-facing messages, in the product's language. The not-found message
// deliberately does not distinguish "does not exist" from "owned by someone
// else" — revealing the difference would leak the existence of other users'
// records.
const (
	msgUnauthorized = "Não autorizado"
	msgNotFound     = "Roteiro não encontrado ou não autorizado"
	msgDeleted      = "Roteiro excluído com sucesso"
	msgListFailed   = "Erro ao buscar roteiros"
	msgCreateFailed = "Erro ao criar roteiro"
	msgUpdateFailed = "Erro ao atualizar roteiro"
	msgDeleteFailed = "Erro ao excluir roteiro"
	msgExportFailed = "Erro ao exportar roteiros"
)

// storageError logs the real error server-side and answers with a generic 500
// body. Internal diagnostic detail must never reach the client.
func (s *Server) storageError(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.log.ErrorContext(r.Context(), "storage error", "error", err)
	httpx.JSONError(w, http.StatusInternalServerError, message)
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation error, e.g.
// "service.ItineraryService.Create: validation error: destino é obrigatório"
// → "destino é obrigatório".
func validationMessage(err error) string {
	msg := err.Error()
	if _, after, ok := strings.Cut(msg, domain.ErrValidation.Error()+": "); ok {
		return after
	}
	return msg
}
