package usecase

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/repository"
	"retail-store/internal/dto/request"
	"retail-store/internal/dto/response"
	"retail-store/internal/dto/viewmodel"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[viewmodel.Product], error)
	GetProductByID(ctx context.Context, productID string) (*viewmodel.Product, error)
	CreateProduct(ctx context.Context, view *viewmodel.Product) (*viewmodel.Product, error)
	UpdateProduct(ctx context.Context, productID string, view *viewmodel.Product) (*viewmodel.Product, error)
}

type productService struct {
	repo   *repository.Repository
	mapper Mapper
	log    *zap.Logger
}

func NewProductService(
	repo *repository.Repository,
	mapper Mapper,
	log *zap.Logger,
) ProductService {
	return &productService{
		repo:   repo,
		mapper: mapper,
		log:    log.With(zap.String("service", "product")),
	}
}

func (s *productService) GetProducts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[viewmodel.Product], error) {
	limit := req.Limit()
	offset := req.Offset()

	products, err := s.repo.Product.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get products",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get products: %w", err)
	}

	total, err := s.repo.Product.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("count products: %w", err)
	}

	views := make([]viewmodel.Product, len(products))
	for i, product := range products {
		views[i] = *s.mapper.ToProductView(product)
	}

	return response.NewPaginatedResponse(views, req.Page, req.PerPage, total), nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*viewmodel.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		s.log.Warn("Invalid product ID format", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	return s.mapper.ToProductView(product), nil
}

func (s *productService) CreateProduct(ctx context.Context, view *viewmodel.Product) (*viewmodel.Product, error) {
	if errs := utils.ValidateStruct(view); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if view.Price.IsNegative() {
		return nil, fmt.Errorf("validation failed: price must not be negative")
	}

	product := s.mapper.ToProduct(view)
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", view.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	return s.mapper.ToProductView(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, view *viewmodel.Product) (*viewmodel.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		s.log.Warn("Invalid product ID format", zap.String("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	if errs := utils.ValidateStruct(view); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if view.Price.IsNegative() {
		return nil, fmt.Errorf("validation failed: price must not be negative")
	}

	existing, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("product not found")
	}

	existing.Name = view.Name
	existing.Price = view.Price
	existing.Description = view.Description
	existing.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, existing); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product")
	}

	return s.mapper.ToProductView(existing), nil
}
