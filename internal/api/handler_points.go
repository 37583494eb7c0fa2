package api

import (
	"net/http"

	"maktaba-be/internal/points"
	"maktaba-be/internal/utils"
)

func (h *Handler) redeemPoints(w http.ResponseWriter, r *http.Request) {
	var in points.RedeemInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	// Route is behind RequireAuth; the id is always present here.
	in.UserID, _ = utils.GetUserIDFromContext(r.Context())
	in.UserEmail = utils.GetUserEmailFromContext(r.Context())

	receipt, err := h.Points.Redeem(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, receipt)
}
