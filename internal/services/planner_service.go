package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

const generationTimeout = 60 * time.Second

type PlannerServiceInterface interface {
	CreateItinerary(ctx context.Context, form request_models.TripRequest) (*response_models.Itinerary, error)
}

// PlannerService issues the schema-constrained generation call, validates
// the structured response, and attaches request-time metadata. One attempt
// per call; retrying is the caller's decision.
type PlannerService struct {
	builder  *ItineraryRequestBuilder
	aiClient utils.ItineraryClientInterface
}

func NewPlannerService(builder *ItineraryRequestBuilder, aiClient utils.ItineraryClientInterface) PlannerServiceInterface {
	return &PlannerService{
		builder:  builder,
		aiClient: aiClient,
	}
}

func (p *PlannerService) CreateItinerary(ctx context.Context, form request_models.TripRequest) (*response_models.Itinerary, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	req := p.builder.Build(form)

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := p.aiClient.GenerateItinerary(ctx, req)
	if err != nil {
		return nil, err
	}

	itinerary, err := ParseItinerary(raw, form.TripLength())
	if err != nil {
		return nil, err
	}

	// Metadata the model is never asked to echo, so history and
	// regeneration keep the user's original framing. Additive only.
	itinerary.Origin = form.Origin
	itinerary.OriginalBudget = form.Budget

	return itinerary, nil
}

// ParseItinerary decodes a generation payload and enforces the structural
// contract: non-empty days contiguously numbered from 1 (matching the trip
// length when expectedDays > 0), complete hotels, activities, and meals.
// It also tags the coordinate variant for the route builder.
func ParseItinerary(raw string, expectedDays int) (*response_models.Itinerary, error) {
	var itin response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &itin); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidItinerary, err)
	}
	if err := validateItinerary(&itin, expectedDays); err != nil {
		return nil, err
	}
	itin.HasInlineCoordinates = detectInlineCoordinates(&itin)
	return &itin, nil
}

func validateItinerary(itin *response_models.Itinerary, expectedDays int) error {
	if strings.TrimSpace(itin.Destination) == "" {
		return fmt.Errorf("%w: missing destination", utils.ErrInvalidItinerary)
	}
	if len(itin.Days) == 0 {
		return fmt.Errorf("%w: itinerary has no days", utils.ErrInvalidItinerary)
	}
	if expectedDays > 0 && len(itin.Days) != expectedDays {
		return fmt.Errorf("%w: expected %d days, got %d", utils.ErrInvalidItinerary, expectedDays, len(itin.Days))
	}

	for i := range itin.Days {
		day := &itin.Days[i]
		if day.Day != i+1 {
			return fmt.Errorf("%w: day %d has number %d", utils.ErrInvalidItinerary, i+1, day.Day)
		}
		if strings.TrimSpace(day.Theme) == "" {
			return fmt.Errorf("%w: day %d has no theme", utils.ErrInvalidItinerary, day.Day)
		}
		if err := validateHotel(day.HotelSuggestion); err != nil {
			return fmt.Errorf("%w: day %d: %v", utils.ErrInvalidItinerary, day.Day, err)
		}
		if len(day.Activities) == 0 {
			return fmt.Errorf("%w: day %d has no activities", utils.ErrInvalidItinerary, day.Day)
		}
		for j, act := range day.Activities {
			if err := validateActivity(act); err != nil {
				return fmt.Errorf("%w: day %d, activity %d: %v", utils.ErrInvalidItinerary, day.Day, j+1, err)
			}
		}
		if strings.TrimSpace(day.Meals.Lunch) == "" || strings.TrimSpace(day.Meals.Dinner) == "" {
			return fmt.Errorf("%w: day %d has incomplete meals", utils.ErrInvalidItinerary, day.Day)
		}
	}
	return nil
}

func validateHotel(h response_models.HotelSuggestion) error {
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("hotel name is empty")
	}
	if strings.TrimSpace(h.Description) == "" {
		return fmt.Errorf("hotel description is empty")
	}
	if strings.TrimSpace(h.PriceRange) == "" {
		return fmt.Errorf("hotel price range is empty")
	}
	return nil
}

func validateActivity(a response_models.Activity) error {
	if strings.TrimSpace(a.Time) == "" {
		return fmt.Errorf("time is empty")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("title is empty")
	}
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("description is empty")
	}
	if strings.TrimSpace(a.Location) == "" {
		return fmt.Errorf("location is empty")
	}
	return nil
}

// detectInlineCoordinates reports whether the model supplied coordinates
// directly on any hotel or activity. Any inline point switches the whole
// itinerary to the direct-coordinate route mode.
func detectInlineCoordinates(itin *response_models.Itinerary) bool {
	for i := range itin.Days {
		if itin.Days[i].HotelSuggestion.Coordinates != nil {
			return true
		}
		for j := range itin.Days[i].Activities {
			if itin.Days[i].Activities[j].Coordinates != nil {
				return true
			}
		}
	}
	return false
}
