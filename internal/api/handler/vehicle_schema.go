package handler

import "github.com/openfleet/garage-api/internal/core/domain"

// messageResponse is the standard envelope for acknowledgments and errors.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---
//
// The required tag rejects zero values, so an empty string or a price of 0
// fails validation exactly like an absent field. That uniform emptiness
// check is part of the contract.

type createVehicleRequest struct {
	Model string  `json:"model" validate:"required"`
	Brand string  `json:"brand" validate:"required"`
	Year  string  `json:"year"  validate:"required"`
	Color string  `json:"color" validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

type updateVehicleRequest struct {
	Color string  `json:"color" validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// --- Response types ---

type createVehicleResponse struct {
	Message string          `json:"message"`
	Car     *domain.Vehicle `json:"car"`
}

type filterVehiclesResponse struct {
	Message  string            `json:"message"`
	Vehicles []*domain.Vehicle `json:"vehicles"`
}

type updateVehicleResponse struct {
	Message  string          `json:"message"`
	FoundCar *domain.Vehicle `json:"foundCar"`
}

type deleteVehicleResponse struct {
	Message string          `json:"message"`
	Vehicle *domain.Vehicle `json:"vehicle"`
}
