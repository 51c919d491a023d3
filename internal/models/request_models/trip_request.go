package request_models

import (
	"fmt"
	"strings"

	"wanderlust/pkg/utils"
)

// TripRequest is the form a traveler submits to request an itinerary.
// Immutable once handed to the planner; the generated itinerary keeps its
// own copy of origin and budget.
type TripRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	Travelers   int      `json:"travelers" binding:"required,min=1"`
	Budget      float64  `json:"budget" binding:"required,gt=0"`
	Interests   []string `json:"interests"`
	Dietary     string   `json:"dietary"`
}

func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidInput)
	}
	if r.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", utils.ErrInvalidInput)
	}
	if r.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", utils.ErrInvalidInput)
	}

	start, err := utils.ParseTripDate(r.StartDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start date %q", utils.ErrInvalidInput, r.StartDate)
	}
	end, err := utils.ParseTripDate(r.EndDate)
	if err != nil {
		return fmt.Errorf("%w: invalid end date %q", utils.ErrInvalidInput, r.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date is before start date", utils.ErrInvalidInput)
	}
	return nil
}

// TripLength returns the inclusive day count of the trip, or 0 when the
// dates do not parse. Callers are expected to Validate first.
func (r TripRequest) TripLength() int {
	start, err := utils.ParseTripDate(r.StartDate)
	if err != nil {
		return 0
	}
	end, err := utils.ParseTripDate(r.EndDate)
	if err != nil {
		return 0
	}
	return utils.TripLengthDays(start, end)
}
