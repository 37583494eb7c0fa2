package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"maktaba-be/internal/catalog"
	"maktaba-be/internal/cms"
	"maktaba-be/internal/logger"
	"maktaba-be/internal/order"
	"maktaba-be/internal/review"
	"maktaba-be/internal/shipping"
	"maktaba-be/internal/user"
	"maktaba-be/internal/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v. Unknown fields are tolerated,
// oversized and malformed bodies are not.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return utils.ErrValidation
	}
	return nil
}

var notFoundErrs = []error{
	user.ErrUserNotFound,
	catalog.ErrBookNotFound,
	catalog.ErrCategoryNotFound,
	shipping.ErrWilayaNotFound,
	order.ErrOrderNotFound,
	review.ErrReviewNotFound,
	cms.ErrPageNotFound,
	cms.ErrPostNotFound,
}

// respondError maps domain errors to HTTP statuses. Anything unrecognized is
// logged and reported as a generic 500 so internals never leak.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, utils.ErrValidation),
		errors.Is(err, utils.ErrInvalidID),
		errors.Is(err, user.ErrEmailExists):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrAccountDisabled):
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)

	case isNotFound(err):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, catalog.ErrInsufficientStock),
		errors.Is(err, user.ErrInsufficientPoints),
		errors.Is(err, order.ErrInvalidTransition):
		utils.WriteJSONError(w, err.Error(), http.StatusConflict)

	default:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", http.StatusInternalServerError)
	}
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int, error) {
	return utils.ParseID(r.PathValue("id"))
}
