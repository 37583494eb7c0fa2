package api

import (
	"net/http"

	"maktaba-be/internal/auth"
	"maktaba-be/internal/user"
	"maktaba-be/internal/utils"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var in user.RegisterInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	token, u, err := h.Users.Register(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, u)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	token, u, err := h.Users.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	auth.SetSessionCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// currentUser returns the authenticated account, or a JSON null for
// anonymous visitors. The storefront polls this on load.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusOK, nil)
		return
	}

	u, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, u)
}
