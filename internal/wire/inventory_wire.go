package wire

import (
	"retail-store/internal/adaptor"
	"retail-store/internal/data/repository"
	"retail-store/pkg/middleware"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInventory(
	r chi.Router,
	inventoryHandler *adaptor.InventoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Stock levels are browsable so shoppers can pick a store
	r.Get("/api/inventories/{id}", inventoryHandler.GetInventoryByID)
	r.Get("/api/locations/{id}/inventories", inventoryHandler.GetInventoriesByLocation)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/inventories", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.AdminEdit(repo, log))           // Must be admin with edit access

		r.Post("/", inventoryHandler.CreateInventory)            // POST /api/admin/inventories
		r.Put("/{id}/quantity", inventoryHandler.AdjustQuantity) // PUT /api/admin/inventories/{id}/quantity
	})
}
