package wire

import (
	"retail-store/internal/adaptor"
	"retail-store/internal/data/repository"
	"retail-store/pkg/middleware"
	"retail-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Checkout works for guests too; a valid session just binds the order
	// to the customer
	r.With(middleware.OptionalSession(repo.Session, log)).Post("/api/orders", orderHandler.CreateOrder)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/orders", orderHandler.GetMyOrders)
		r.Get("/api/orders/{id}", orderHandler.GetOrderByID)
	})

	// ==================== ADMIN ROUTES ====================
	// View-level admins can inspect a customer's order history
	r.Route("/api/admin/customers/{id}/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Admin(repo, log))               // Must be admin

		r.Get("/", orderHandler.GetCustomerOrders)
	})

	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.AdminEdit(repo, log))           // Must be admin with edit access

		r.Put("/{id}/complete", orderHandler.CompleteOrder) // PUT /api/admin/orders/{id}/complete
	})
}
