// Package memory provides in-process implementations of the repository
// ports. Collections live for the lifetime of the process only; there is
// no durability across restarts.
package memory

import (
	"context"
	"sync"

	"github.com/openfleet/garage-api/internal/core/domain"
)

// VehicleRepository keeps vehicles in an ordered slice; insertion order is
// the listing order. A mutex makes each operation atomic — the collection
// is otherwise unsynchronized across requests.
type VehicleRepository struct {
	mu       sync.Mutex
	vehicles []*domain.Vehicle
	nextID   int
}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{nextID: 1}
}

// Create assigns the next id and appends the vehicle. Ids come from a
// monotonic counter, so a deleted vehicle's id is never handed out again.
func (r *VehicleRepository) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *vehicle
	stored.ID = r.nextID
	r.nextID++
	r.vehicles = append(r.vehicles, &stored)

	out := stored
	return &out, nil
}

// All returns every vehicle in insertion order. An empty collection yields
// an empty slice, not an error; the service layer decides what empty means.
func (r *VehicleRepository) All(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

// FindByBrand returns the vehicles whose brand exactly equals brand,
// preserving relative order. Zero matches is a valid, empty result.
func (r *VehicleRepository) FindByBrand(_ context.Context, brand string) ([]*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Vehicle, 0)
	for _, v := range r.vehicles {
		if v.Brand == brand {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Update mutates only the color and price of the vehicle with the given id
// and returns the updated record.
func (r *VehicleRepository) Update(_ context.Context, id int, color string, price float64) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vehicles {
		if v.ID == id {
			v.Color = color
			v.Price = price
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

// Delete removes exactly one vehicle by id and returns the removed record.
func (r *VehicleRepository) Delete(_ context.Context, id int) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.vehicles {
		if v.ID == id {
			removed := *v
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return &removed, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}
