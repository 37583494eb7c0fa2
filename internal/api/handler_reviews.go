package api

import (
	"net/http"
	"strings"

	"maktaba-be/internal/review"
	"maktaba-be/internal/utils"
)

func (h *Handler) listBookReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	reviews, err := h.Reviews.ListForBook(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	// The book must exist before accepting a review for it.
	if _, err := h.Books.GetBook(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	var in review.SubmitInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}
	in.BookID = id

	// Logged-in reviewers are identified by their account.
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		in.UserID = &userID
		if strings.TrimSpace(in.Name) == "" {
			in.Name = utils.GetUserNameFromContext(r.Context())
		}
	}

	rv, err := h.Reviews.Submit(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, rv)
}

func (h *Handler) bookRating(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	summary, err := h.Reviews.RatingSummary(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_review", "review", &id)
	w.WriteHeader(http.StatusNoContent)
}
