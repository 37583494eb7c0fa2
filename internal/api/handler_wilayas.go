package api

import (
	"net/http"

	"maktaba-be/internal/shipping"
	"maktaba-be/internal/utils"
)

func (h *Handler) listActiveWilayas(w http.ResponseWriter, r *http.Request) {
	wilayas, err := h.Shipping.GetActive(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wilayas)
}

func (h *Handler) listAllWilayas(w http.ResponseWriter, r *http.Request) {
	wilayas, err := h.Shipping.GetAll(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wilayas)
}

func (h *Handler) createWilaya(w http.ResponseWriter, r *http.Request) {
	var in shipping.WilayaInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	wilaya, err := h.Shipping.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "create_wilaya", "wilaya", &wilaya.ID)
	utils.WriteJSON(w, http.StatusCreated, wilaya)
}

func (h *Handler) updateWilaya(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in shipping.WilayaInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	wilaya, err := h.Shipping.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_wilaya", "wilaya", &id)
	utils.WriteJSON(w, http.StatusOK, wilaya)
}
