package handlers

import (
	"net/http"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/MaxouZouzouAlou/RestoNowFront/utils"
)

// UpdateFilters applies a partial update of the search/filter params and
// returns the resulting snapshot so the caller rerenders in one round trip.
func (h *Handler) UpdateFilters(w http.ResponseWriter, r *http.Request) {
	var reqBody models.FilterUpdate
	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	if err := h.Store.UpdateFilters(reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid filter value")
		return
	}

	utils.RespondJSON(w, http.StatusOK, h.Store.Snapshot())
}
