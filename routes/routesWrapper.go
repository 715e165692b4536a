package routes

import (
	"nilenavigator/catalog"
	"nilenavigator/marketplace"
	"nilenavigator/ratelim"
	"nilenavigator/store"

	"github.com/julienschmidt/httprouter"
)

// Deps is everything the route groups share.
type Deps struct {
	Catalog      *catalog.Catalog
	Shop         *marketplace.Marketplace
	Store        store.KV
	RateLimiter  *ratelim.RateLimiter
	ShareBaseURL string
	PingMessage  string
}

func RoutesWrapper(router *httprouter.Router, deps Deps) {
	AddUtilityRoutes(router, deps)
	AddGuideRoutes(router, deps)
	AddCatalogRoutes(router, deps)
	AddItineraryRoutes(router, deps)
	AddMarketplaceRoutes(router, deps)
	AddCartRoutes(router, deps)
	AddBookingRoutes(router, deps)
	AddFeedRoutes(router, deps)
	AddSettingsRoutes(router, deps)
	AddMapRoutes(router, deps)
	AddSearchRoutes(router, deps)
}
