package utils

import "errors"

var (
	// ErrMissingAPIKey means the generation credential is absent or empty.
	// Generation is never attempted in that case.
	ErrMissingAPIKey = errors.New("generation API key is missing")

	// ErrGenerationFailed covers transport or provider errors on the single
	// generation attempt. There is no internal retry; the caller decides
	// whether to resubmit.
	ErrGenerationFailed = errors.New("itinerary generation failed")

	// ErrEmptyCompletion means the provider answered without a usable payload.
	ErrEmptyCompletion = errors.New("no content generated")

	// ErrInvalidItinerary means the generated payload did not conform to the
	// requested schema.
	ErrInvalidItinerary = errors.New("generated itinerary is not valid")

	ErrInvalidInput       = errors.New("invalid input")
	ErrWeatherUnavailable = errors.New("weather lookup failed")
)
