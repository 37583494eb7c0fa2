package api

import (
	"net/http"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/review"
	"maktaba-be/internal/utils"
)

// bookListing decorates a catalog row with its review summary.
type bookListing struct {
	catalog.Book
	Rating review.RatingSummary `json:"rating"`
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	filter := catalog.BookFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	books, err := h.Books.GetBooks(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	summaries, err := h.Reviews.AllRatingSummaries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	listing := make([]bookListing, 0, len(books))
	for _, b := range books {
		listing = append(listing, bookListing{Book: b, Rating: summaries[b.ID]})
	}
	utils.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	book, err := h.Books.GetBook(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, book)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var in catalog.BookInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	book, err := h.Books.CreateBook(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "create_book", "book", &book.ID)
	utils.WriteJSON(w, http.StatusCreated, book)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in catalog.BookInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	book, err := h.Books.UpdateBook(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_book", "book", &id)
	utils.WriteJSON(w, http.StatusOK, book)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.Books.DeleteBook(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_book", "book", &id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Books.GetCategories(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cats)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in catalog.CategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	cat, err := h.Books.CreateCategory(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "create_category", "category", &cat.ID)
	utils.WriteJSON(w, http.StatusCreated, cat)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in catalog.CategoryInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	cat, err := h.Books.UpdateCategory(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_category", "category", &id)
	utils.WriteJSON(w, http.StatusOK, cat)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.Books.DeleteCategory(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_category", "category", &id)
	w.WriteHeader(http.StatusNoContent)
}
