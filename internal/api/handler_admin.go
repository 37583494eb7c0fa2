package api

import (
	"net/http"
	"strconv"

	"maktaba-be/internal/activity"
	"maktaba-be/internal/logger"
	"maktaba-be/internal/metrics"
	"maktaba-be/internal/user"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

// logAdminAction records an admin mutation in the audit trail. Best-effort:
// the mutation already succeeded.
func (h *Handler) logAdminAction(r *http.Request, action, entityType string, entityID *int) {
	if h.Activity == nil {
		return
	}

	ctx := r.Context()
	entry := activity.Entry{
		AdminEmail: utils.GetUserEmailFromContext(ctx),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if adminID, ok := utils.GetUserIDFromContext(ctx); ok {
		entry.AdminID = &adminID
	}

	if err := h.Activity.Log(ctx, entry); err != nil {
		logger.FromCtx(ctx).Warn("could not record admin action",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

type statsResponse struct {
	Books         int               `json:"books"`
	LowStockBooks int               `json:"lowStockBooks"`
	Orders        int               `json:"orders"`
	Revenue       string            `json:"revenue"`
	Customers     int               `json:"customers"`
	Wilayas       int               `json:"wilayas"`
	Counters      map[string]uint64 `json:"counters"`
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	books, err := h.Books.CountBooks(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	lowStock, err := h.Books.CountLowStockBooks(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	orders, err := h.Orders.Count(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	revenue, err := h.Orders.TotalRevenue(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	customers, err := h.Users.CountCustomers(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}
	wilayas, err := h.Shipping.Count(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, statsResponse{
		Books:         books,
		LowStockBooks: lowStock,
		Orders:        orders,
		Revenue:       revenue,
		Customers:     customers,
		Wilayas:       wilayas,
		Counters:      metrics.Snapshot(),
	})
}

func (h *Handler) adminListCustomers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) adminUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in user.UpdateInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	u, err := h.Users.Update(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_customer", "user", &id)
	utils.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) adminDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_customer", "user", &id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, r, utils.ErrValidation)
			return
		}
		limit = n
	}

	entries, err := h.Activity.List(r.Context(), limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}
