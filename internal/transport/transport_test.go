package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"corrosion-engine/internal/catalog"

	"github.com/stretchr/testify/require"
)

func testEnv(t *testing.T) *Env {
	_, thisFile, _, _ := runtime.Caller(0)
	dataDir := filepath.Join(filepath.Dir(thisFile), "..", "..", "data")
	cat, err := catalog.Load(dataDir)
	require.NoError(t, err)
	return &Env{Catalog: cat}
}

func TestAssessGalvanicRouteRoundTrips(t *testing.T) {
	router := NewRouter(testEnv(t))
	body, _ := json.Marshal(map[string]interface{}{
		"AnodeID": "HY80", "CathodeID": "SS316",
		"TemperatureC": 20, "PH": 8.1, "ChlorideMgL": 19000,
		"AreaRatioCathodeOverAnode": 1.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/tools/assess_galvanic", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Contains(t, out, "CurrentRatio")
}

func TestUnknownMaterialReturnsInputValidationEnvelope(t *testing.T) {
	router := NewRouter(testEnv(t))
	body, _ := json.Marshal(map[string]interface{}{
		"AnodeID": "not-a-real-alloy", "CathodeID": "SS316",
		"TemperatureC": 20, "PH": 8.1, "ChlorideMgL": 19000,
		"AreaRatioCathodeOverAnode": 1.0,
	})
	req := httptest.NewRequest(http.MethodPost, "/tools/assess_galvanic", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "InputValidation", envelope.Kind)
}

func TestSchemaRouteServesEveryRegisteredTool(t *testing.T) {
	router := NewRouter(testEnv(t))
	req := httptest.NewRequest(http.MethodGet, "/tools/assess_localized/schema", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var schema map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schema))
	require.Contains(t, schema, "material_id")
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	env := testEnv(t)
	router := NewRouter(env)
	limiter := NewIPRateLimiter(0, 1)
	handler := limiter.LimitMiddleware(router)

	get := func() int {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "203.0.113.5:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, get())
	require.Equal(t, http.StatusTooManyRequests, get())
}
