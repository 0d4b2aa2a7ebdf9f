package handlers

import (
	"net/http"

	apierrors "github.com/morozrk/go-blog-gateway/internal/errors"
)

// GetFeed отдаёт текущее состояние ленты без похода к апстриму.
func (h *Handlers) GetFeed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Feed.Snapshot())
}

// LoadMore подгружает следующую страницу ленты и отдаёт обновлённое
// состояние. Повторный вызов во время подгрузки — no-op: вернётся
// текущее состояние с Loading=true.
func (h *Handlers) LoadMore(w http.ResponseWriter, r *http.Request) {
	if err := h.Feed.LoadNextBatch(r.Context()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.Feed.Snapshot())
}
