package wire

import (
	"retail-store/internal/adaptor"
	"retail-store/internal/data/repository"
	"retail-store/pkg/middleware"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Anyone can browse the catalog
	r.Get("/api/products", productHandler.GetProducts)
	r.Get("/api/products/{id}", productHandler.GetProductByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/products", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.AdminEdit(repo, log))           // Must be admin with edit access

		r.Post("/", productHandler.CreateProduct)    // POST /api/admin/products
		r.Put("/{id}", productHandler.UpdateProduct) // PUT /api/admin/products/{id}
	})
}
