package services

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"wanderlust/internal/models/request_models"
	"wanderlust/pkg/utils"
)

const plannerSystemInstruction = "You are a world-class luxury travel agent. You plan perfect, logistical trips."

// ItineraryRequestBuilder turns a trip form into the prompt, system
// instruction, and output schema for one generation call. The prompt's
// currency, script, and "City, State" naming constraints are a contract with
// the geocoding step: looser location naming raises the fallback rate.
type ItineraryRequestBuilder struct{}

func NewItineraryRequestBuilder() *ItineraryRequestBuilder {
	return &ItineraryRequestBuilder{}
}

func (b *ItineraryRequestBuilder) Build(form request_models.TripRequest) utils.GenerationRequest {
	return utils.GenerationRequest{
		Prompt:            b.buildPrompt(form),
		SystemInstruction: plannerSystemInstruction,
		Schema:            itinerarySchema(),
		SchemaOutline:     itinerarySchemaOutline,
	}
}

func (b *ItineraryRequestBuilder) buildPrompt(form request_models.TripRequest) string {
	var p strings.Builder

	p.WriteString("Create a detailed travel itinerary for a trip.\n")
	if form.Origin != "" {
		fmt.Fprintf(&p, "Traveler is going FROM: %s TO: %s.\n", form.Origin, form.Destination)
	} else {
		fmt.Fprintf(&p, "Traveler is going TO: %s.\n", form.Destination)
	}
	fmt.Fprintf(&p, "Dates: %s to %s.\n", form.StartDate, form.EndDate)
	fmt.Fprintf(&p, "Travelers: %d.\n", form.Travelers)
	fmt.Fprintf(&p, "Budget: ₹%.0f INR total.\n", form.Budget)
	fmt.Fprintf(&p, "Interests: %s.\n", strings.Join(form.Interests, ", "))
	fmt.Fprintf(&p, "Dietary Restrictions: %s.\n", form.Dietary)

	p.WriteString("\n")
	p.WriteString("IMPORTANT: All currency values must be in Indian Rupees (INR) and prefixed with the ₹ symbol.\n")
	p.WriteString("IMPORTANT: All location names, destination names, and descriptions MUST be in English script only.\n")
	p.WriteString(`IMPORTANT: For 'destination' and 'location' fields, always use the format "City, State" (e.g., "Manali, Himachal Pradesh" instead of just "Manali") to ensure accurate mapping.` + "\n")
	p.WriteString("Please ensure the itinerary is realistic, accounts for travel time, and suggests specific real locations/restaurants where possible.\n")
	p.WriteString("The tone should be professional yet exciting.\n")

	return p.String()
}

// itinerarySchema enumerates every field the generator must return; the
// required sets per nested object are the minimal contract downstream
// consumers depend on.
func itinerarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"tripTitle": {Type: genai.TypeString, Description: "A catchy title for the trip"},
			"summary":   {Type: genai.TypeString, Description: "A brief enthusiastic summary of the trip"},
			"destination": {
				Type: genai.TypeString,
			},
			"totalCostEstimate": {Type: genai.TypeString, Description: "Estimated total cost range in INR (Indian Rupees)"},
			"weatherForecast":   {Type: genai.TypeString, Description: "Predicted weather conditions for this time of year"},
			"packingList": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 5-7 essential items to pack based on activities and weather",
			},
			"days": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":   {Type: genai.TypeInteger},
						"theme": {Type: genai.TypeString, Description: "Theme of the day (e.g., Cultural Dive, Adventure)"},
						"hotelSuggestion": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"name":        {Type: genai.TypeString},
								"description": {Type: genai.TypeString},
								"priceRange":  {Type: genai.TypeString, Description: "Price in INR (₹)"},
							},
							Required: []string{"name", "description", "priceRange"},
						},
						"activities": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"time":         {Type: genai.TypeString, Description: "e.g., Morning, Afternoon, 10:00 AM"},
									"title":        {Type: genai.TypeString},
									"description":  {Type: genai.TypeString},
									"location":     {Type: genai.TypeString},
									"costEstimate": {Type: genai.TypeString, Description: "Cost in INR (₹)"},
									"duration":     {Type: genai.TypeString},
								},
								Required: []string{"time", "title", "description", "location"},
							},
						},
						"meals": {
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"lunch":  {Type: genai.TypeString, Description: "Restaurant or food suggestion matching dietary needs"},
								"dinner": {Type: genai.TypeString, Description: "Restaurant or food suggestion"},
							},
							Required: []string{"lunch", "dinner"},
						},
					},
					Required: []string{"day", "theme", "hotelSuggestion", "activities", "meals"},
				},
			},
		},
		Required: []string{"tripTitle", "summary", "days", "packingList", "totalCostEstimate", "weatherForecast"},
	}
}

// itinerarySchemaOutline is the same schema as a JSON skeleton, for
// providers without native response schemas.
const itinerarySchemaOutline = `{
  "tripTitle": "string",
  "summary": "string",
  "destination": "City, State",
  "totalCostEstimate": "₹...",
  "weatherForecast": "string",
  "packingList": ["string"],
  "days": [
    {
      "day": 1,
      "theme": "string",
      "hotelSuggestion": {"name": "string", "description": "string", "priceRange": "₹..."},
      "activities": [
        {"time": "Morning", "title": "string", "description": "string", "location": "City, State", "costEstimate": "₹...", "duration": "2 hours"}
      ],
      "meals": {"lunch": "string", "dinner": "string"}
    }
  ]
}`
