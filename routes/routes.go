package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nilenavigator/agi"
	"nilenavigator/autocom"
	"nilenavigator/booking"
	"nilenavigator/cart"
	"nilenavigator/catalog"
	"nilenavigator/feed"
	"nilenavigator/itinerary"
	"nilenavigator/maps"
	"nilenavigator/marketplace"
	"nilenavigator/middleware"
	"nilenavigator/settings"
	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func AddUtilityRoutes(router *httprouter.Router, deps Deps) {
	router.GET("/health", Index)
	router.GET("/api/ping", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": deps.PingMessage})
	})
}

func AddGuideRoutes(router *httprouter.Router, deps Deps) {
	router.POST("/api/ai-guide", middleware.Chain(deps.RateLimiter.Limit)(agi.AskGuide))
}

func AddCatalogRoutes(router *httprouter.Router, deps Deps) {
	h := &catalog.Handler{Catalog: deps.Catalog}
	router.GET("/api/attractions", h.ListAttractions)
	router.GET("/api/attractions/:id", h.GetAttraction)
	router.GET("/api/governorates", h.ListGovernorates)
	router.GET("/api/governorates/:name", h.GetGovernorate)
}

func AddItineraryRoutes(router *httprouter.Router, deps Deps) {
	h := &itinerary.Handler{
		Planner:      itinerary.NewPlanner(deps.Catalog),
		Store:        deps.Store,
		ShareBaseURL: deps.ShareBaseURL,
	}
	router.POST("/api/itinerary/generate", h.Generate)
	router.POST("/api/itinerary/personalized", h.Personalized)
	router.GET("/api/itinerary", h.GetSaved)
	router.PUT("/api/itinerary", h.Save)
	router.DELETE("/api/itinerary", h.Reset)
	router.POST("/api/itinerary/export", h.Export)
}

func AddMarketplaceRoutes(router *httprouter.Router, deps Deps) {
	h := &marketplace.Handler{Shop: deps.Shop}
	router.GET("/api/marketplace/products", h.ListProducts)
	router.GET("/api/marketplace/products/:id", h.GetProduct)
	router.GET("/api/marketplace/filters", h.GetFilters)
	router.GET("/api/marketplace/locations", h.ListLocations)
	router.GET("/api/marketplace/locations/:id", h.GetLocation)
}

func AddCartRoutes(router *httprouter.Router, deps Deps) {
	h := &cart.Handler{Store: deps.Store, Shop: deps.Shop}
	router.GET("/api/cart", h.GetCart)
	router.DELETE("/api/cart", h.ClearCart)
	router.POST("/api/cart/items", h.AddItem)
	router.PUT("/api/cart/items/:productId", h.UpdateItem)
	router.DELETE("/api/cart/items/:productId", h.RemoveItem)
	router.POST("/api/cart/checkout", h.Checkout)
	router.GET("/api/cart/orders", h.ListOrders)
}

func AddBookingRoutes(router *httprouter.Router, deps Deps) {
	h := &booking.Handler{Store: deps.Store}
	router.GET("/api/experiences", booking.ListExperiences)
	router.GET("/api/experiences/:id", booking.GetExperience)
	router.GET("/api/experiences/:id/availability", h.GetAvailability)
	router.GET("/api/bookings", h.ListBookings)
	router.POST("/api/bookings", h.CreateBooking)
	router.GET("/api/bookings/:id", h.GetBooking)
	router.DELETE("/api/bookings/:id", h.CancelBooking)
}

func AddFeedRoutes(router *httprouter.Router, deps Deps) {
	h := &feed.Handler{Store: deps.Store}
	router.GET("/api/feed/posts", h.ListPosts)
	router.POST("/api/feed/posts", h.CreatePost)
	router.POST("/api/feed/posts/:id/like", h.ToggleLike)
	router.POST("/api/feed/posts/:id/comments", h.AddComment)
	router.GET("/api/feed/badges", feed.ListBadges)
	router.POST("/api/feed/badges/:id/check", feed.CheckBadge)
}

func AddSettingsRoutes(router *httprouter.Router, deps Deps) {
	h := &settings.Handler{Store: deps.Store, Catalog: deps.Catalog}
	router.GET("/api/settings", h.GetSettings)
	router.GET("/api/settings/:type", h.GetSetting)
	router.PUT("/api/settings/:type", h.UpdateSetting)
}

func AddMapRoutes(router *httprouter.Router, deps Deps) {
	h := &maps.Handler{Catalog: deps.Catalog}
	router.GET("/api/map/config", h.GetMapConfig)
	router.GET("/api/map/markers/:governorate", h.GetMapMarkers)
}

func AddSearchRoutes(router *httprouter.Router, deps Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	h := &autocom.Handler{Index: autocom.ForStore(ctx, deps.Store, deps.Catalog)}
	router.GET("/api/ac", h.Autocompleter)
}
