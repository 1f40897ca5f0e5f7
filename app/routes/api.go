// Package routes wires the storefront's canonical route set.
//
// The /products and /user prefixes deliberately overlap: the public listing
// is reachable under both, and product creation lives under /user while the
// other admin verbs live under /products. Clients depend on both prefixes,
// so the duplication is part of the contract.
package routes

import (
	"net/http"
	"path/filepath"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"github.com/shashiranjanraj/vastra/pkg/storage"
)

func RegisterAPI(r *router.Router, db *mongo.Database) {
	productController := controllers.NewProductController(
		repositories.NewProductRepository(db),
		storage.Default(),
	)
	orderController := controllers.NewOrderController(
		repositories.NewOrderRepository(db),
	)

	products := r.Group("/products")
	products.Get("/getAllProducts", "products.index", productController.Index)
	products.Get("/newest", "products.newest", productController.Newest)
	products.Get("/oldest", "products.oldest", productController.Oldest)
	products.Get("/price-high", "products.price_high", productController.PriceHigh)
	products.Get("/price-low", "products.price_low", productController.PriceLow)
	products.Get("/{id}", "products.show", productController.Show)
	products.Put("/admin/products/{id}", "products.update", productController.Update)
	products.Delete("/admin/products/{id}", "products.destroy", productController.Destroy)

	// Admin product creation and a second copy of the listing live under
	// /user for historical reasons; both surfaces are load-bearing.
	user := r.Group("/user")
	user.Post("/admin/products", "products.store", productController.Store)
	user.Get("/getAllProducts", "user.products.index", productController.Index)

	orders := r.Group("/api/orders")
	orders.Post("/", "orders.store", orderController.Store)
	orders.Get("/", "orders.index", orderController.Index)
	orders.Post("/{id}/delete", "orders.destroy", orderController.Destroy)

	r.Get("/", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Server is running successfully!")) //nolint:errcheck
	})

	registerUploads(r)
}

// registerUploads serves stored product images statically at /uploads/*.
func registerUploads(r *router.Router) {
	root := storage.Root(storage.Use("local"))
	dir := filepath.Join(root, config.UploadsDir())
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
	r.Mount("/uploads", fs)
}
