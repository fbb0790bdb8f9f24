package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/openfleet/garage-api/internal/core/domain"
	"github.com/openfleet/garage-api/internal/core/ports"
)

// VehicleHandler handles HTTP requests for vehicle registry operations.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// Create handles POST /cars.
//
// @Summary      Register a new vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      createVehicleRequest  true  "Vehicle details"
// @Success      201   {object}  createVehicleResponse
// @Failure      400   {object}  messageResponse
// @Router       /cars [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req createVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "all fields required"})
	}

	car, err := h.service.Create(c.Request().Context(), ports.CreateVehicleInput{
		Model: req.Model,
		Brand: req.Brand,
		Year:  req.Year,
		Color: req.Color,
		Price: req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createVehicleResponse{
		Message: "vehicle created successfully",
		Car:     car,
	})
}

// List handles GET /cars. An empty registry is a 404, not an empty array —
// clients of the original contract rely on it.
//
// @Summary      List all vehicles
// @Tags         vehicles
// @Produce      json
// @Success      200  {array}   domain.Vehicle
// @Failure      404  {object}  messageResponse
// @Router       /cars [get]
func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoVehicles) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "no vehicles found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

// FilterByBrand handles GET /cars/:brand. Matching is exact and
// case-sensitive; an empty match list is still a 200.
//
// @Summary      Filter vehicles by brand
// @Tags         vehicles
// @Produce      json
// @Param        brand  path      string  true  "Brand (exact match)"
// @Success      200    {object}  filterVehiclesResponse
// @Router       /cars/{brand} [get]
func (h *VehicleHandler) FilterByBrand(c echo.Context) error {
	vehicles, err := h.service.FilterByBrand(c.Request().Context(), c.Param("brand"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, filterVehiclesResponse{
		Message:  "vehicles filtered successfully",
		Vehicles: vehicles,
	})
}

// Update handles PUT /cars/:id. Only color and price are mutable.
//
// @Summary      Update a vehicle's color and price
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Vehicle id"
// @Param        body  body      updateVehicleRequest  true  "New color and price"
// @Success      200   {object}  updateVehicleResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /cars/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	var req updateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "color and price are required"})
	}

	// Non-numeric ids match nothing, same as the numeric coercion in the
	// original contract.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "vehicle not found"})
	}

	foundCar, err := h.service.Update(c.Request().Context(), ports.UpdateVehicleInput{
		ID:    id,
		Color: req.Color,
		Price: req.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "vehicle not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, updateVehicleResponse{
		Message:  "vehicle updated successfully",
		FoundCar: foundCar,
	})
}

// Delete handles DELETE /cars/:id.
//
// @Summary      Remove a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id  path      int  true  "Vehicle id"
// @Success      200  {object}  deleteVehicleResponse
// @Failure      404  {object}  messageResponse
// @Router       /cars/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "vehicle not found"})
	}

	vehicle, err := h.service.Delete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "vehicle not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, deleteVehicleResponse{
		Message: "vehicle removed successfully",
		Vehicle: vehicle,
	})
}
