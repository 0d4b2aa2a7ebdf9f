package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	apierrors "github.com/morozrk/go-blog-gateway/internal/errors"
	"github.com/morozrk/go-blog-gateway/internal/feed"
	"github.com/morozrk/go-blog-gateway/pkg/log"
)

// ContactRequest — форма обратной связи.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse — подтверждение приёма с номером обращения.
type ContactResponse struct {
	TicketID string `json:"ticket_id"`
}

// SubmitContact валидирует форму и имитирует отправку: реального бэкенда
// у формы нет, наружу уходит только сгенерированный номер обращения.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("decode: %w", feed.ErrInvalidArgument))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Message == "" || !validEmail(req.Email) {
		apierrors.WriteError(w, r, fmt.Errorf("validate: %w", feed.ErrInvalidArgument))
		return
	}

	ticket := uuid.NewString()

	log.From(r.Context()).Info("contact_submitted",
		slog.String("ticket_id", ticket),
		slog.String("email", req.Email),
	)

	writeJSON(w, http.StatusAccepted, ContactResponse{TicketID: ticket})
}

// validEmail — минимальная проверка формы адреса, без RFC-валидации.
func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
