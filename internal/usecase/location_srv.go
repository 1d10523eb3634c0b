package usecase

import (
	"context"
	"fmt"
	"time"

	"retail-store/internal/data/repository"
	"retail-store/internal/dto/viewmodel"
	"retail-store/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LocationService interface {
	GetLocations(ctx context.Context) ([]viewmodel.Location, error)
	GetDefaultLocation(ctx context.Context) (*viewmodel.Location, error)
	CreateLocation(ctx context.Context, view *viewmodel.Location) (*viewmodel.Location, error)
}

type locationService struct {
	repo   *repository.Repository
	mapper Mapper
	log    *zap.Logger
}

func NewLocationService(
	repo *repository.Repository,
	mapper Mapper,
	log *zap.Logger,
) LocationService {
	return &locationService{
		repo:   repo,
		mapper: mapper,
		log:    log.With(zap.String("service", "location")),
	}
}

func (s *locationService) GetLocations(ctx context.Context) ([]viewmodel.Location, error) {
	locations, err := s.repo.Location.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get locations", zap.Error(err))
		return nil, fmt.Errorf("get locations: %w", err)
	}

	views := make([]viewmodel.Location, len(locations))
	for i, location := range locations {
		views[i] = *s.mapper.ToLocationView(location)
	}
	return views, nil
}

func (s *locationService) GetDefaultLocation(ctx context.Context) (*viewmodel.Location, error) {
	location, err := s.repo.DefaultLocation(ctx)
	if err != nil {
		s.log.Error("Failed to get default location", zap.Error(err))
		return nil, fmt.Errorf("get default location: %w", err)
	}
	if location == nil {
		return nil, fmt.Errorf("location not found")
	}

	return s.mapper.ToLocationView(location), nil
}

func (s *locationService) CreateLocation(ctx context.Context, view *viewmodel.Location) (*viewmodel.Location, error) {
	if errs := utils.ValidateStruct(view); len(errs) > 0 {
		s.log.Warn("Create location validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	location := s.mapper.ToLocation(view)
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	now := time.Now()
	location.CreatedAt = now
	location.UpdatedAt = now

	if err := s.repo.Location.Create(ctx, location); err != nil {
		s.log.Error("Failed to create location", zap.Error(err), zap.String("name", view.Name))
		return nil, fmt.Errorf("failed to create location")
	}

	s.log.Info("Location created",
		zap.String("location_id", location.ID.String()),
		zap.String("name", location.Name))

	return s.mapper.ToLocationView(location), nil
}
