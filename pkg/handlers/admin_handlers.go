package handlers

import (
	"net/http"

	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
)

// FeedHandler returns the loaded gallery document as JSON
func (h *Handler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	logging.Logger.Info("Generating feed")

	result := h.svc.Load(r.Context())
	if !result.Ready() {
		logging.Logger.Error("Feed unavailable", "err", result.Err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": result.ErrorMessage()})
		return
	}

	writeJSON(w, http.StatusOK, models.Document{Items: result.Items})
}

// ReloadHandler drops the cached gallery and loads it again
func (h *Handler) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow() {
		http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	logging.Logger.Info("Reloading gallery")
	h.svc.Reload()

	result := h.svc.Load(r.Context())
	if !result.Ready() {
		logging.Logger.Error("Reload failed", "err", result.Err)
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"message": "Reload failed",
			"error":   result.ErrorMessage(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Gallery reloaded successfully",
		"items":   len(result.Items),
	})
}
