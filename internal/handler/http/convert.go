package http

import (
	"net/http"

	"github.com/MKhiriev/notion-to-github/internal/app"
	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/MKhiriev/notion-to-github/models"
)

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ConversionRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid convert request body")
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, nil)
		return
	}

	resp, err := h.services.ConversionService.Convert(r.Context(), req)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("conversion failed")
		} else {
			log.Debug().Err(err).Msg("conversion rejected")
		}
		utils.WriteError(w, status, convertErrorMessage(err), nil)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
