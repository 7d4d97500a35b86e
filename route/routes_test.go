package route

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"cafeapi/config"
	"cafeapi/controller"
	"cafeapi/database"
	"cafeapi/model"
	"cafeapi/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenPath(filepath.Join(t.TempDir(), "cafes.db"), logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	cfg := &config.Config{AllowedOrigins: []string{"https://cafes.example"}}
	return NewRouter(cfg, controller.NewCafeController(store.NewCafeStore(db)))
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddThenSearch(t *testing.T) {
	r := newTestServer(t)

	body := `{"name":"Brew","map_url":"u","img_url":"u","location":"NY","seats":"10-20","has_toilet":true,"has_wifi":true,"has_sockets":false,"can_take_calls":false,"coffee_price":"£2.50"}`
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(r, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var added struct {
		Message string     `json:"message"`
		Cafe    model.Cafe `json:"cafe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	assert.Equal(t, "Cafe added successfully!", added.Message)
	assert.NotZero(t, added.Cafe.ID)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/search?loc=NY", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var found struct {
		Cafes []model.Cafe `json:"cafes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found.Cafes, 1)
	assert.Equal(t, added.Cafe, found.Cafes[0])

	w = serve(r, httptest.NewRequest(http.MethodGet, "/search?loc=ny", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateThroughRouter(t *testing.T) {
	r := newTestServer(t)

	body := `{"name":"Brew","map_url":"u","img_url":"u","location":"NY","seats":"10-20","has_toilet":true,"has_wifi":true,"has_sockets":false,"can_take_calls":false}`
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	require.Equal(t, http.StatusCreated, serve(r, req).Code)

	w := serve(r, httptest.NewRequest(http.MethodPatch, "/update-price?id=1&coffee_price=3", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/all", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var all struct {
		Cafes []model.Cafe `json:"cafes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all.Cafes, 1)
	require.NotNil(t, all.Cafes[0].CoffeePrice)
	assert.Equal(t, "3", *all.Cafes[0].CoffeePrice)
	assert.True(t, all.Cafes[0].HasWifi)

	w = serve(r, httptest.NewRequest(http.MethodPatch, "/update-price?id=7&coffee_price=3", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/update-price?id=1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomePage(t *testing.T) {
	r := newTestServer(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Cafe &amp; Wifi API")
}

func TestHealthAndUnknownRoute(t *testing.T) {
	r := newTestServer(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/update-price", nil)
	req.Header.Set("Origin", "https://cafes.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := serve(r, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://cafes.example", w.Header().Get("Access-Control-Allow-Origin"))
}
