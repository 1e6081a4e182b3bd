package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starudream/e2e-kit/server/env"
	"github.com/starudream/e2e-kit/server/internal/json"
)

func do(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	s := env.Default().Merge(env.Settings{UI: env.Credentials{Password: "override"}})
	app := New(s)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestEnvironments(t *testing.T) {
	rec := do(t, "/v1/environments")
	require.Equal(t, http.StatusOK, rec.Code)
	resp, err := json.UnmarshalTo[*ListEnvironmentResp](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, env.Names(), resp.Data)
}

func TestEnvironment(t *testing.T) {
	rec := do(t, "/v1/environments/demo")
	require.Equal(t, http.StatusOK, rec.Code)
	s, err := json.UnmarshalTo[env.Settings](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, env.Default(), s)

	rec = do(t, "/v1/environments/current")
	require.Equal(t, http.StatusOK, rec.Code)
	s, err = json.UnmarshalTo[env.Settings](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "override", s.UI.Password)

	rec = do(t, "/v1/environments/staging")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `staging`)
}

func TestBrowserOptions(t *testing.T) {
	rec := do(t, "/v1/browser/options")
	require.Equal(t, http.StatusOK, rec.Code)
	raw, err := json.UnmarshalTo[map[string]any](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, raw["prefs"], 5)
	assert.Len(t, raw["args"], 5)
	assert.Equal(t, []any{"enable-automation"}, raw["excludeSwitches"])

	rec = do(t, "/v1/browser/options?format=selenium")
	require.Equal(t, http.StatusOK, rec.Code)
	caps, err := json.UnmarshalTo[map[string]any](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "chrome", caps["browserName"])
	require.Contains(t, caps, "goog:chromeOptions")
	chromeOpts := caps["goog:chromeOptions"].(map[string]any)
	assert.Equal(t, []any{"enable-automation"}, chromeOpts["excludeSwitches"])

	rec = do(t, "/v1/browser/options?format=preferences")
	require.Equal(t, http.StatusOK, rec.Code)
	prefs, err := json.UnmarshalTo[map[string]any](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"password_manager_enabled": false}, prefs["profile"])

	rec = do(t, "/v1/browser/options?format=yaml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwagger(t *testing.T) {
	rec := do(t, "/swagger/index.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")

	rec = do(t, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := json.UnmarshalTo[map[string]any](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "E2E Kit API", doc["info"].(map[string]any)["title"])
	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/health", "/version", "/v1/environments", "/v1/environments/{name}", "/v1/browser/options"} {
		assert.Contains(t, paths, p)
	}
}

func TestBrowserOptionsBrowser(t *testing.T) {
	rec := do(t, "/v1/browser/options?format=selenium&browser=chromium")
	require.Equal(t, http.StatusOK, rec.Code)
	caps, err := json.UnmarshalTo[map[string]any](rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "chromium", caps["browserName"])
}
