package api

import (
	"maktaba-be/internal/activity"
	"maktaba-be/internal/catalog"
	"maktaba-be/internal/cms"
	"maktaba-be/internal/order"
	"maktaba-be/internal/points"
	"maktaba-be/internal/review"
	"maktaba-be/internal/shipping"
	"maktaba-be/internal/user"
)

// Handler bundles the services behind the REST surface.
type Handler struct {
	Users    user.Service
	Books    catalog.Service
	Shipping shipping.Service
	Orders   order.Service
	Points   points.Service
	Reviews  review.Service
	CMS      cms.Service
	Activity activity.Repository
}
