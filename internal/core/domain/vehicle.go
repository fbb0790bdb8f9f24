package domain

import "errors"

var ErrVehicleNotFound = errors.New("vehicle not found")
var ErrNoVehicles = errors.New("no vehicles registered")

// Vehicle is one entry in the registry. The ID is assigned by the store on
// creation and is never supplied by callers; only Color and Price are
// mutable afterwards.
type Vehicle struct {
	ID    int     `json:"id"`
	Model string  `json:"model"`
	Brand string  `json:"brand"`
	Year  string  `json:"year"`
	Color string  `json:"color"`
	Price float64 `json:"price"`
}
