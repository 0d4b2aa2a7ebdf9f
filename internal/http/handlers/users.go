package handlers

import (
	"net/http"

	apierrors "github.com/morozrk/go-blog-gateway/internal/errors"
)

// GetUser отдаёт страницу профиля: пользователь и его посты.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	view, err := h.Feed.OpenUser(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
