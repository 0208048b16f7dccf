package cms_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmedialabs/kkengineering-sub000/models"
	"github.com/sjmedialabs/kkengineering-sub000/repository"
	"github.com/sjmedialabs/kkengineering-sub000/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repository.Init(repository.NewMemoryRepository())

	router := gin.New()
	api := router.Group("/api")
	SetupAdminRoutes(api)
	return router
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := services.GenerateAdminJWT("00000000-0000-0000-0000-000000000099", "admin@kkengineering.in")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/products", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/products", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryCreateGeneratesSlug(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/categories", gin.H{
		"name": "Vibro Sifters",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, "vibro-sifters", data["slug"])

	// Same slug again conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/admin/categories", gin.H{
		"name": "Vibro Sifters",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProductValidationAndLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	// Missing required name.
	w := doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"category": "Vibro Sifters",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"name":     "VS-30 Vibro Sifter",
		"category": "Vibro Sifters",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeData(t, w)
	id := data["id"].(string)
	assert.Equal(t, "vs-30-vibro-sifter", data["slug"])
	assert.Equal(t, "In Stock", data["availability"])

	// Partial update touches only what was sent.
	w = doJSON(t, router, http.MethodPut, "/api/admin/products/"+id, gin.H{
		"availability": "Out of Stock",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data = decodeData(t, w)
	assert.Equal(t, "Out of Stock", data["availability"])
	assert.Equal(t, "VS-30 Vibro Sifter", data["name"])

	// Unknown id is a 404, malformed id a 400.
	w = doJSON(t, router, http.MethodGet, "/api/admin/products/00000000-0000-0000-0000-0000000000aa", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/admin/products/not-a-uuid", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/admin/products/"+id, nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodDelete, "/api/admin/products/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductBulkDeleteToleratesUnknownIDs(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"name": "Keeper", "category": "Screens",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w)["id"].(string)

	// Empty list fails before touching the store.
	w = doJSON(t, router, http.MethodPost, "/api/admin/products/bulk-delete", gin.H{"ids": []string{}}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/products/bulk-delete", gin.H{
		"ids": []string{id, "00000000-0000-0000-0000-0000000000bb"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decodeData(t, w)["deleted"])
}

func TestProductBulkDeleteByCategory(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
			"name": fmt.Sprintf("Spare %d", i), "category": "Spare Parts",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"name": "Survivor", "category": "Screens",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/products/bulk-delete-category", gin.H{
		"categoryName": "Spare Parts",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 3, decodeData(t, w)["deleted"])
}

func TestProductStatsWireFormat(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"name": "A", "category": "Sifters",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/admin/products", gin.H{
		"name": "B", "category": "Sifters", "availability": "Out of Stock",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/products/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.EqualValues(t, 2, data["totalProducts"])
	assert.EqualValues(t, 1, data["activeProducts"])
	assert.EqualValues(t, 1, data["inactiveProducts"])
	categoryStats, ok := data["categoryStats"].([]any)
	require.True(t, ok)
	require.Len(t, categoryStats, 1)
	entry := categoryStats[0].(map[string]any)
	assert.Equal(t, "Sifters", entry["categoryName"])
	assert.EqualValues(t, 2, entry["totalProducts"])
}

func TestEnquiryStatusUpdate(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	// Seed through the repository; the admin API has no enquiry create.
	enquiry := models.Enquiry{Name: "Ramesh", Email: "ramesh@example.com"}
	require.NoError(t, repository.Get().CreateEnquiry(context.Background(), &enquiry))

	w := doJSON(t, router, http.MethodPut, "/api/admin/enquiries/"+enquiry.ID.String(), gin.H{
		"status": "resolved",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "resolved", decodeData(t, w)["status"])

	// Invalid status value is rejected by binding.
	w = doJSON(t, router, http.MethodPut, "/api/admin/enquiries/"+enquiry.ID.String(), gin.H{
		"status": "archived",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Counts ride along on the list endpoint.
	w = doJSON(t, router, http.MethodGet, "/api/admin/enquiries", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	counts := decodeData(t, w)["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["resolved"])
	assert.EqualValues(t, 0, counts["pending"])
	assert.EqualValues(t, 1, counts["total"])
}

func TestSettingsSingletonRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/settings", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	company := decodeData(t, w)["company"].(map[string]any)
	assert.NotEmpty(t, company["name"], "defaults materialize on first read")

	w = doJSON(t, router, http.MethodPut, "/api/admin/settings", gin.H{
		"seo":     gin.H{"title": "Updated Title"},
		"company": gin.H{"name": "KK Engineering Pvt Ltd"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/admin/settings", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "Updated Title", data["seo"].(map[string]any)["title"])
}

func TestContentTypeValidation(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/content/home", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "home", decodeData(t, w)["type"])

	w = doJSON(t, router, http.MethodGet, "/api/admin/content/pricing", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/admin/content/about", gin.H{
		"data": gin.H{"story": "Thirty years of screening machines"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)["data"].(map[string]any)
	assert.Equal(t, "Thirty years of screening machines", data["story"])
}

func TestAdminLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	hash, err := services.GetAdminAuthService().HashPassword("correct-horse")
	require.NoError(t, err)
	admin := models.Admin{Email: "admin@kkengineering.in", Name: "Admin", PasswordHash: hash}
	require.NoError(t, repository.Get().CreateAdmin(context.Background(), &admin))

	// Wrong password and unknown email return the same 401.
	w := doJSON(t, router, http.MethodPost, "/api/admin/login", gin.H{
		"email": "admin@kkengineering.in", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/admin/login", gin.H{
		"email": "nobody@kkengineering.in", "password": "correct-horse",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/admin/login", gin.H{
		"email": "admin@kkengineering.in", "password": "correct-horse",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decodeData(t, w)
	token, ok := data["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, w.Result().Cookies(), "login sets the admin_token cookie")

	// The issued token opens the protected surface.
	w = doJSON(t, router, http.MethodGet, "/api/admin/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "admin@kkengineering.in", decodeData(t, w)["email"])
}
