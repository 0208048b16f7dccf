package site_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
)

func newSiteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repository.Init(repository.NewMemoryRepository())

	router := gin.New()
	SetupSiteRoutes(router.Group("/api"))
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestPublicProductCatalog(t *testing.T) {
	router := newSiteRouter(t)
	ctx := context.Background()

	featured := models.Product{Name: "VS-30", Slug: "vs-30", Category: "Sifters", Featured: true}
	plain := models.Product{Name: "LS-1200", Slug: "ls-1200", Category: "Screens"}
	require.NoError(t, repository.Get().CreateProduct(ctx, &featured))
	require.NoError(t, repository.Get().CreateProduct(ctx, &plain))

	w := get(t, router, "/api/products")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var listing struct {
		Products []models.Product `json:"products"`
		Total    int64            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(dataOf(t, w), &listing))
	assert.Len(t, listing.Products, 2)
	assert.EqualValues(t, 2, listing.Total)

	w = get(t, router, "/api/products?featured=true")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(dataOf(t, w), &listing))
	require.Len(t, listing.Products, 1)
	assert.Equal(t, "vs-30", listing.Products[0].Slug)

	// Detail resolves by UUID and by slug through the same route.
	var product models.Product
	w = get(t, router, "/api/products/"+featured.ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(dataOf(t, w), &product))
	assert.Equal(t, featured.ID, product.ID)

	w = get(t, router, "/api/products/ls-1200")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(dataOf(t, w), &product))
	assert.Equal(t, plain.ID, product.ID)

	w = get(t, router, "/api/products/no-such-slug")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicSiteDocuments(t *testing.T) {
	router := newSiteRouter(t)

	w := get(t, router, "/api/settings")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var settings models.Settings
	require.NoError(t, json.Unmarshal(dataOf(t, w), &settings))
	assert.NotEmpty(t, settings.Company.Name)

	w = get(t, router, "/api/content/home")
	require.Equal(t, http.StatusOK, w.Code)
	var content models.Content
	require.NoError(t, json.Unmarshal(dataOf(t, w), &content))
	assert.Equal(t, models.ContentTypeHome, content.Type)

	w = get(t, router, "/api/content/pricing")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicEnquirySubmission(t *testing.T) {
	router := newSiteRouter(t)

	body, _ := json.Marshal(gin.H{
		"type":         "product",
		"name":         "Ramesh Patel",
		"email":        "ramesh@example.com",
		"product_name": "VS-30 Vibro Sifter",
		"message":      "Please send a quotation",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var enquiry models.Enquiry
	require.NoError(t, json.Unmarshal(dataOf(t, w), &enquiry))
	assert.Equal(t, models.EnquiryStatusPending, enquiry.Status)
	assert.Equal(t, models.EnquiryTypeProduct, enquiry.Type)

	// Bad email never reaches the store.
	body, _ = json.Marshal(gin.H{"name": "X", "email": "not-an-email"})
	req = httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	stored, err := repository.Get().GetEnquiries(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
