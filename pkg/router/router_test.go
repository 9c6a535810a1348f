package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/pkg/router"
)

func echo(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

func call(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestAllVerbsMount(t *testing.T) {
	r := router.New()
	r.Get("/x", "x.get", echo("get"))
	r.Post("/x", "x.post", echo("post"))
	r.Put("/x", "x.put", echo("put"))
	r.Patch("/x", "x.patch", echo("patch"))
	r.Delete("/x", "x.delete", echo("delete"))

	h := r.Handler()
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		rec := call(h, method, "/x")
		require.Equal(t, http.StatusOK, rec.Code, method)
	}
	assert.Equal(t, http.StatusMethodNotAllowed, call(h, http.MethodOptions, "/x").Code)
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	var sawHeader bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawHeader = r.Header.Get("X-Probe") == "1"
			next.ServeHTTP(w, r)
		})
	}

	r := router.New()
	g := r.Group("/api", mw)
	g.Delete("/things/{id}", "things.destroy", echo("gone"))

	req := httptest.NewRequest(http.MethodDelete, "/api/things/3", nil)
	req.Header.Set("X-Probe", "1")
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawHeader)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/api/inventory/{id}", "inventory.show", echo("ok"))

	url, err := r.URL("inventory.show", map[string]string{"id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/api/inventory/7", url)

	_, err = r.URL("inventory.show", nil)
	assert.Error(t, err)

	_, err = r.URL("missing.route", nil)
	assert.Error(t, err)
}

func TestRoutesSnapshotIsACopy(t *testing.T) {
	r := router.New()
	r.Get("/a", "a", echo("a"))

	table := r.Routes()
	table["b"] = "/b"

	_, ok := r.Path("b")
	assert.False(t, ok)
}
