package api

import (
	"net/http"

	"maktaba-be/internal/logger"
	"maktaba-be/internal/middleware"
)

// NewRouter assembles the REST surface. Route-level guards handle
// authorization; cross-cutting middleware wraps the whole mux.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireRole("admin", fn)
	}
	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	// auth
	mux.HandleFunc("POST /api/register", h.register)
	mux.HandleFunc("POST /api/login", h.login)
	mux.HandleFunc("POST /api/logout", h.logout)
	mux.HandleFunc("GET /api/user", h.currentUser)

	// catalog
	mux.HandleFunc("GET /api/books", h.listBooks)
	mux.HandleFunc("GET /api/books/{id}", h.getBook)
	mux.Handle("POST /api/books", admin(h.createBook))
	mux.Handle("PUT /api/books/{id}", admin(h.updateBook))
	mux.Handle("DELETE /api/books/{id}", admin(h.deleteBook))

	mux.HandleFunc("GET /api/categories", h.listCategories)
	mux.Handle("POST /api/categories", admin(h.createCategory))
	mux.Handle("PUT /api/categories/{id}", admin(h.updateCategory))
	mux.Handle("DELETE /api/categories/{id}", admin(h.deleteCategory))

	// reviews
	mux.HandleFunc("GET /api/books/{id}/reviews", h.listBookReviews)
	mux.HandleFunc("POST /api/books/{id}/reviews", h.submitReview)
	mux.HandleFunc("GET /api/books/{id}/rating", h.bookRating)
	mux.Handle("DELETE /api/admin/reviews/{id}", admin(h.deleteReview))

	// shipping
	mux.HandleFunc("GET /api/wilayas", h.listActiveWilayas)
	mux.Handle("GET /api/admin/wilayas", admin(h.listAllWilayas))
	mux.Handle("POST /api/admin/wilayas", admin(h.createWilaya))
	mux.Handle("PUT /api/admin/wilayas/{id}", admin(h.updateWilaya))

	// orders
	mux.HandleFunc("POST /api/orders", h.createOrder)
	mux.Handle("GET /api/orders", authed(h.listOwnOrders))
	mux.Handle("GET /api/orders/{id}", authed(h.getOrder))
	mux.Handle("PUT /api/orders/{id}/status", admin(h.updateOrderStatus))
	mux.Handle("GET /api/admin/orders", admin(h.listAllOrders))
	mux.Handle("DELETE /api/admin/orders/{id}", admin(h.deleteOrder))

	// points
	mux.Handle("POST /api/points/redeem", authed(h.redeemPoints))

	// cms
	mux.HandleFunc("GET /api/pages/{slug}", h.getPage)
	mux.Handle("PUT /api/admin/pages/{slug}", admin(h.upsertPage))
	mux.HandleFunc("GET /api/blog", h.listBlogPosts)
	mux.HandleFunc("GET /api/blog/{id}", h.getBlogPost)
	mux.Handle("GET /api/admin/blog", admin(h.adminListBlogPosts))
	mux.Handle("POST /api/admin/blog", admin(h.createBlogPost))
	mux.Handle("PUT /api/admin/blog/{id}", admin(h.updateBlogPost))
	mux.Handle("DELETE /api/admin/blog/{id}", admin(h.deleteBlogPost))

	// admin dashboard
	mux.Handle("GET /api/admin/stats", admin(h.adminStats))
	mux.Handle("GET /api/admin/customers", admin(h.adminListCustomers))
	mux.Handle("PUT /api/admin/customers/{id}", admin(h.adminUpdateCustomer))
	mux.Handle("DELETE /api/admin/customers/{id}", admin(h.adminDeleteCustomer))
	mux.Handle("GET /api/admin/activity", admin(h.adminListActivity))

	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)
	return handler
}
