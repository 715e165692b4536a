package marketplace

import (
	"net/http"

	"nilenavigator/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Shop *Marketplace
}

// GET /api/marketplace/products?category=&governorate=&minPrice=&maxPrice=&search=
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	f := Filter{
		Category:    q.Get("category"),
		Governorate: q.Get("governorate"),
		Search:      q.Get("search"),
	}
	if v, ok := utils.QueryFloat(r, "minPrice"); ok {
		f.MinPrice = &v
	}
	if v, ok := utils.QueryFloat(r, "maxPrice"); ok {
		f.MaxPrice = &v
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"products": h.Shop.Search(f)})
}

// GET /api/marketplace/products/:id
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, ok := h.Shop.Product(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"product": p})
}

// GET /api/marketplace/filters
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"categories":   Categories,
		"governorates": h.Shop.Governorates(),
	})
}

// GET /api/marketplace/locations
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"locations": h.Shop.Locations()})
}

// GET /api/marketplace/locations/:id
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	loc, ok := h.Shop.Location(ps.ByName("id"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Location not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"location": loc})
}
