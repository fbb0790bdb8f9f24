package ports

import (
	"context"

	"github.com/openfleet/garage-api/internal/core/domain"
)

// CreateVehicleInput carries all data needed to register a new vehicle.
type CreateVehicleInput struct {
	Model string
	Brand string
	Year  string
	Color string
	Price float64
}

// UpdateVehicleInput carries the mutable fields of an existing vehicle.
type UpdateVehicleInput struct {
	ID    int
	Color string
	Price float64
}

// VehicleService defines use-case operations over the vehicle registry.
type VehicleService interface {
	Create(ctx context.Context, input CreateVehicleInput) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	FilterByBrand(ctx context.Context, brand string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, input UpdateVehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int) (*domain.Vehicle, error)
}
