package domain

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnknownBody     = errors.New("unknown body")
	ErrEphemerisLookup = errors.New("ephemeris lookup failed")
	ErrNoPositions     = errors.New("no body positions available")
	ErrChartNotFound   = errors.New("chart not found")
)

// FieldError names one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field-level problem found in a request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err returns e when it holds at least one field error, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return ErrInvalidRequest.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

// ValidateLocation checks geographic coordinate ranges.
func ValidateLocation(latitude, longitude float64) error {
	var verr ValidationError
	if latitude < -90 || latitude > 90 || math.IsNaN(latitude) {
		verr.Add("latitude", "must be a number between -90 and 90")
	}
	if longitude < -180 || longitude > 180 || math.IsNaN(longitude) {
		verr.Add("longitude", "must be a number between -180 and 180")
	}
	return verr.Err()
}
