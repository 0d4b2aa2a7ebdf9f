package handlers

import (
	"net/http"

	apierrors "github.com/morozrk/go-blog-gateway/internal/errors"
)

// GetPost отдаёт детальную страницу поста: пост, автор, комментарии.
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	view, err := h.Feed.OpenPost(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
