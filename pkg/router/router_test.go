package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/vastra/pkg/router"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body)) //nolint:errcheck
	}
}

func TestGroupPrefixesRoutes(t *testing.T) {
	r := router.New()
	products := r.Group("/products")
	products.Get("/getAllProducts", "products.index", okHandler("index"))
	products.Get("/{id}", "products.show", okHandler("show"))

	req := httptest.NewRequest("GET", "/products/getAllProducts", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "index" {
		t.Errorf("expected group route to serve, got %q", rec.Body.String())
	}
}

func TestNamedRoutePath(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", okHandler("show"))

	path, ok := r.Path("products.show")
	if !ok {
		t.Fatal("expected named route to be registered")
	}
	if path != "/products/{id}" {
		t.Errorf("unexpected path: %q", path)
	}

	if _, ok := r.Path("missing"); ok {
		t.Error("expected unknown name to report false")
	}
}

func TestURLSubstitutesParams(t *testing.T) {
	r := router.New()
	r.Post("/api/orders/{id}/delete", "orders.destroy", okHandler(""))

	url, err := r.URL("orders.destroy", map[string]string{"id": "65f1c2d3e4a5b6c7d8e9f0a1"})
	if err != nil {
		t.Fatal(err)
	}
	if url != "/api/orders/65f1c2d3e4a5b6c7d8e9f0a1/delete" {
		t.Errorf("unexpected url: %q", url)
	}

	if _, err := r.URL("orders.destroy", nil); err == nil {
		t.Error("expected error for missing params")
	}
}

func TestRoutesListsRegistrations(t *testing.T) {
	r := router.New()
	orders := r.Group("/api/orders")
	orders.Post("/", "orders.store", okHandler(""))
	orders.Get("/", "orders.index", okHandler(""))

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(infos))
	}
	for _, ri := range infos {
		if ri.Path != "/api/orders" {
			t.Errorf("expected group root to normalize to /api/orders, got %q", ri.Path)
		}
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Tag", "group")
			next.ServeHTTP(w, req)
		})
	}

	r := router.New()
	g := r.Group("/admin", tag)
	g.Get("/ping", "admin.ping", okHandler("pong"))

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Header().Get("X-Tag") != "group" {
		t.Error("expected group middleware to run")
	}
	if rec.Body.String() != "pong" {
		t.Errorf("expected handler body, got %q", rec.Body.String())
	}
}
