package api

import (
	"net/http"

	"maktaba-be/internal/order"
	"maktaba-be/internal/utils"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in order.CreateInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	// Guests may order; logged-in customers get the order on their account.
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		in.UserID = &userID
	}

	o, err := h.Orders.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) listOwnOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.Orders.GetUserOrders(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

// getOrder serves an order to its owner or to an admin; everyone else sees
// a 404 rather than a hint that the order exists.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	o, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if utils.GetUserRoleFromContext(r.Context()) != "admin" {
		userID, _ := utils.GetUserIDFromContext(r.Context())
		if o.UserID == nil || *o.UserID != userID {
			respondError(w, r, order.ErrOrderNotFound)
			return
		}
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.GetOrders(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in struct {
		Status order.Status `json:"status"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	o, err := h.Orders.UpdateStatus(r.Context(), id, in.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_order_status", "order", &id)
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.Orders.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_order", "order", &id)
	w.WriteHeader(http.StatusNoContent)
}
