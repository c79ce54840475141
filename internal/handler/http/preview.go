package http

import (
	"net/http"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
)

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PreviewRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid preview request body")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	resp, err := h.services.PreviewService.Preview(r.Context(), req)
	if err != nil {
		log.Err(err).Msg("preview failed")
		utils.WriteError(w, http.StatusInternalServerError, app.MsgInternalServerError, nil)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
