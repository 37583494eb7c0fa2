package api

import (
	"net/http"

	"maktaba-be/internal/cms"
	"maktaba-be/internal/utils"
)

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.CMS.GetPage(r.Context(), r.PathValue("slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) upsertPage(w http.ResponseWriter, r *http.Request) {
	var in cms.SitePageInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	page, err := h.CMS.UpsertPage(r.Context(), r.PathValue("slug"), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "upsert_page", "page", &page.ID)
	utils.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) listBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.CMS.ListPublishedPosts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) getBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.CMS.GetPost(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) adminListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.CMS.ListAllPosts(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, posts)
}

func (h *Handler) createBlogPost(w http.ResponseWriter, r *http.Request) {
	var in cms.BlogPostInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.CMS.CreatePost(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "create_blog_post", "blog_post", &post.ID)
	utils.WriteJSON(w, http.StatusCreated, post)
}

func (h *Handler) updateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var in cms.BlogPostInput
	if err := decodeJSON(w, r, &in); err != nil {
		respondError(w, r, err)
		return
	}

	post, err := h.CMS.UpdatePost(r.Context(), id, in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "update_blog_post", "blog_post", &id)
	utils.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) deleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.CMS.DeletePost(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	h.logAdminAction(r, "delete_blog_post", "blog_post", &id)
	w.WriteHeader(http.StatusNoContent)
}
