package marketplace

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nilenavigator/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func productIDs(ps []models.Product) []string {
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestDefaultShop(t *testing.T) {
	m := Default()
	assert.Len(t, m.Locations(), 11)
	assert.Len(t, m.Products(), 3)

	loc, ok := m.Location("khan-el-khalili-metalwork-bazaar")
	require.True(t, ok)
	assert.Equal(t, "Cairo", loc.Governorate)
	assert.Empty(t, loc.Products)

	assert.Equal(t, []string{"Cairo", "Matrouh", "Fayoum", "Luxor", "Aswan", "Alexandria", "South Sinai"}, m.Governorates())
}

func TestSearchFilters(t *testing.T) {
	m := Default()

	assert.Equal(t, []string{"pottery-vase-1", "jewelry-necklace-1", "textile-scarf-1"}, productIDs(m.Search(Filter{Category: "all", Governorate: "all"})))
	assert.Equal(t, []string{"jewelry-necklace-1"}, productIDs(m.Search(Filter{Category: "Jewelry"})))
	assert.Equal(t, []string{"textile-scarf-1"}, productIDs(m.Search(Filter{Governorate: "Matrouh"})))
	assert.Equal(t, []string{"pottery-vase-1", "jewelry-necklace-1"}, productIDs(m.Search(Filter{MinPrice: price(40)})))
	assert.Equal(t, []string{"pottery-vase-1", "textile-scarf-1"}, productIDs(m.Search(Filter{MaxPrice: price(45)})))
	assert.Equal(t, []string{"textile-scarf-1"}, productIDs(m.Search(Filter{Search: "BERBER"})))
	// category text is searched too
	assert.Equal(t, []string{"pottery-vase-1"}, productIDs(m.Search(Filter{Search: "pottery"})))
	assert.Empty(t, m.Search(Filter{Governorate: "Luxor"}))
	assert.NotNil(t, m.Search(Filter{Category: "Papyrus"}))
}

func TestProductJoinsLocation(t *testing.T) {
	p, ok := Default().Product("pottery-vase-1")
	require.True(t, ok)
	require.NotNil(t, p.Location)
	assert.Equal(t, "fustat-pottery", p.Location.ID)

	_, ok = Default().Product("nope")
	assert.False(t, ok)
}

func TestCleanDefaults(t *testing.T) {
	var raw []RawLocation
	require.NoError(t, json.Unmarshal([]byte(`[
		{"name": "Qena Carpet Weavers", "governorate": "Qena", "city": "Qena", "handicraft_types": ["Carpets", "Weaving"],
		 "phone": "+20 (96) 532-7890 ext", "email": "not-an-email"},
		{"name": "Sohag Wood Carving", "governorate": "Sohag", "handicraft_types": "Wood carving"},
		{"name": "No Crafts", "governorate": "Giza"},
		{"governorate": "Giza", "handicraft_types": ["Papyrus"]}
	]`), &raw))

	cleaned := Clean(raw)
	require.Len(t, cleaned, 2)

	q := cleaned[0]
	assert.Equal(t, "Traditional carpets, weaving workshop in Qena.", q.Description)
	assert.Equal(t, "Qena, Qena Governorate", q.Address)
	assert.Equal(t, "+20 (96) 532-7890 ", q.Phone)
	assert.Empty(t, q.Email)
	assert.Equal(t, "9:00 AM - 6:00 PM", q.OpeningHours)
	assert.Equal(t, []string{"Carpets", "Weaving"}, q.Specialties)
	assert.Equal(t, placeholderImage, q.ImageURL)

	s := cleaned[1]
	assert.Equal(t, []string{"Wood carving"}, []string(s.HandicraftTypes))
	assert.Equal(t, ", Sohag Governorate", s.Address)
}

func TestImportDerivesIDs(t *testing.T) {
	locs, err := Import(scrapedSeed)
	require.NoError(t, err)
	require.Len(t, locs, 8)
	assert.Equal(t, "potters-village-fustat", locs[0].ID)
	assert.Equal(t, "Traditional pottery, ceramics craftsmanship with deep cultural roots.", locs[0].History)
	assert.Equal(t, []string{"/api/placeholder/600/400", "/api/placeholder/600/400"}, locs[0].Images)
	assert.Equal(t, "dahab-bedouin-silver-workshop", locs[7].ID)

	_, err = Import([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestLocationID(t *testing.T) {
	assert.Equal(t, "potters-village-fustat", LocationID("Potters Village, Fustat"))
	assert.Equal(t, "khan-el-khalili-metalwork-bazaar", LocationID("Khan el-Khalili Metalwork Bazaar"))
}

func newRouter() *httprouter.Router {
	h := &Handler{Shop: Default()}
	r := httprouter.New()
	r.GET("/api/marketplace/products", h.ListProducts)
	r.GET("/api/marketplace/products/:id", h.GetProduct)
	r.GET("/api/marketplace/filters", h.GetFilters)
	r.GET("/api/marketplace/locations", h.ListLocations)
	r.GET("/api/marketplace/locations/:id", h.GetLocation)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandlers(t *testing.T) {
	r := newRouter()

	rec := get(r, "/api/marketplace/products?category=all&minPrice=40&maxPrice=100&search=vase")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []string{"pottery-vase-1"}, productIDs(list.Products))

	rec = get(r, "/api/marketplace/products/jewelry-necklace-1")
	require.Equal(t, http.StatusOK, rec.Code)
	var one struct {
		Product models.ProductWithLocation `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &one))
	assert.Equal(t, "Mahmoud Ali", one.Product.ArtisanName)
	require.NotNil(t, one.Product.Location)
	assert.Equal(t, "Khan el-Khalili Bazaar", one.Product.Location.Name)

	rec = get(r, "/api/marketplace/products/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())

	rec = get(r, "/api/marketplace/filters")
	require.Equal(t, http.StatusOK, rec.Code)
	var filters struct {
		Categories   []string `json:"categories"`
		Governorates []string `json:"governorates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filters))
	assert.Equal(t, Categories, filters.Categories)
	assert.Contains(t, filters.Governorates, "South Sinai")

	assert.Equal(t, http.StatusOK, get(r, "/api/marketplace/locations/siwa-textiles").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/api/marketplace/locations/atlantis").Code)
}
