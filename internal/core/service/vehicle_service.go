package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openfleet/garage-api/internal/api/metrics"
	"github.com/openfleet/garage-api/internal/core/domain"
	"github.com/openfleet/garage-api/internal/core/ports"
)

// VehicleService implements the vehicle registry use-cases.
type VehicleService struct {
	repo   ports.VehicleRepository
	logger zerolog.Logger
}

func NewVehicleService(repo ports.VehicleRepository, logger zerolog.Logger) *VehicleService {
	return &VehicleService{repo: repo, logger: logger}
}

// Create registers a new vehicle. Field presence is validated at the edge;
// the id is assigned by the repository.
func (s *VehicleService) Create(ctx context.Context, input ports.CreateVehicleInput) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		Model: input.Model,
		Brand: input.Brand,
		Year:  input.Year,
		Color: input.Color,
		Price: input.Price,
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create vehicle")
		return nil, err
	}

	metrics.VehiclesCreatedTotal.WithLabelValues(created.Brand).Inc()
	s.logger.Info().Int("id", created.ID).Str("brand", created.Brand).Str("model", created.Model).Msg("vehicle created")

	return created, nil
}

// List returns every registered vehicle in insertion order. An empty
// registry is reported as ErrNoVehicles, not an empty success — callers
// depend on the 404 (compatibility with the original contract).
func (s *VehicleService) List(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, domain.ErrNoVehicles
	}
	return vehicles, nil
}

// FilterByBrand returns the vehicles matching brand exactly. Zero matches
// is a success with an empty list; no existence check happens here.
func (s *VehicleService) FilterByBrand(ctx context.Context, brand string) ([]*domain.Vehicle, error) {
	return s.repo.FindByBrand(ctx, brand)
}

// Update changes only the color and price of an existing vehicle.
func (s *VehicleService) Update(ctx context.Context, input ports.UpdateVehicleInput) (*domain.Vehicle, error) {
	updated, err := s.repo.Update(ctx, input.ID, input.Color, input.Price)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("id", updated.ID).Msg("vehicle updated")
	return updated, nil
}

// Delete removes a vehicle by id and returns the removed record.
func (s *VehicleService) Delete(ctx context.Context, id int) (*domain.Vehicle, error) {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.VehiclesDeletedTotal.Inc()
	s.logger.Info().Int("id", removed.ID).Msg("vehicle removed")
	return removed, nil
}
