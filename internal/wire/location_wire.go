package wire

import (
	"retail-store/internal/adaptor"
	"retail-store/internal/data/repository"
	"retail-store/pkg/middleware"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLocation(
	r chi.Router,
	locationHandler *adaptor.LocationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/locations", locationHandler.GetLocations)
	r.Get("/api/locations/default", locationHandler.GetDefaultLocation)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/locations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.AdminEdit(repo, log))           // Must be admin with edit access

		r.Post("/", locationHandler.CreateLocation) // POST /api/admin/locations
	})
}
