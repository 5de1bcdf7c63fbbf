package handlers

import (
	"net/http"

	"github.com/MaxouZouzouAlou/RestoNowFront/models"
	"github.com/MaxouZouzouAlou/RestoNowFront/state"
	"github.com/MaxouZouzouAlou/RestoNowFront/utils"
)

// Handler binds the JSON API to the state store. All state flows one way:
// reads return a snapshot, writes go through the store's mutation methods.
type Handler struct {
	Store *state.Store
}

func New(store *state.Store) *Handler {
	return &Handler{Store: store}
}

// GetState returns the full UI state plus the derived filtered view.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.Store.Snapshot())
}

// GetPlaces returns only the filtered card list and the loading flag. While
// a load is outstanding the list stands in for the replaced content view.
func (h *Handler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	utils.RespondJSON(w, http.StatusOK, struct {
		Loading bool              `json:"loading"`
		Places  []state.PlaceView `json:"places"`
	}{
		Loading: snap.Loading,
		Places:  snap.Places,
	})
}

// SetCategory switches between the restaurants and bars endpoints.
func (h *Handler) SetCategory(w http.ResponseWriter, r *http.Request) {
	reqBody := struct {
		Category models.Category `json:"category"`
	}{}

	if err := utils.ParseBody(r.Body, &reqBody); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Failed to decode request body")
		return
	}

	if err := h.Store.SetCategory(reqBody.Category); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Unknown category")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.Response{Success: true})
}
