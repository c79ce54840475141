package http

import (
	"net/http"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
)

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PublishRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid publish request body")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	resp, err := h.services.PublishService.Publish(r.Context(), req)
	if err != nil {
		status, message, details := publishErrorResponse(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Int("status", status).Msg("publish failed")
		} else {
			log.Debug().Err(err).Int("status", status).Msg("publish rejected")
		}
		utils.WriteError(w, status, message, details)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
