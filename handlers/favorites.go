package handlers

import (
	"net/http"

	"github.com/MaxouZouzouAlou/RestoNowFront/utils"
	"github.com/go-chi/chi"
)

// ToggleFavorite stars or unstars the card at a raw-list position. Positions
// are transient keys; favorites are dropped whenever the list reloads.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	index, err := utils.StringToInt(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to convert given index to int")
		return
	}

	favorite, err := h.Store.ToggleFavorite(index)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Favorite index out of range")
		return
	}

	utils.RespondJSON(w, http.StatusOK, struct {
		Index    int  `json:"index"`
		Favorite bool `json:"favorite"`
	}{
		Index:    index,
		Favorite: favorite,
	})
}
