package usecase

import (
	"retail-store/internal/data/repository"
	"retail-store/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Mapper    Mapper
	Auth      AuthService
	Product   ProductService
	Location  LocationService
	Inventory InventoryService
	Order     OrderService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	mapper := NewMapper(repo, log)
	return &Service{
		Mapper:    mapper,
		Auth:      NewAuthService(repo, config, log),
		Product:   NewProductService(repo, mapper, log),
		Location:  NewLocationService(repo, mapper, log),
		Inventory: NewInventoryService(repo, mapper, log),
		Order:     NewOrderService(repo, mapper, log),
	}
}
