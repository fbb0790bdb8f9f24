package ports

import (
	"context"

	"github.com/openfleet/garage-api/internal/core/domain"
)

// VehicleRepository defines the interface for vehicle storage.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	All(ctx context.Context) ([]*domain.Vehicle, error)
	FindByBrand(ctx context.Context, brand string) ([]*domain.Vehicle, error)
	Update(ctx context.Context, id int, color string, price float64) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int) (*domain.Vehicle, error)
}
