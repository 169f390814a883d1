package api

import (
	"fmt"
	"io"
	"time"
)

// Condition grades the state of a piece of equipment
type Condition string

const (
	ConditionGood   Condition = "Good"
	ConditionBetter Condition = "Better"
	ConditionBest   Condition = "Best"
)

// Valid reports whether the condition is one of the accepted grades
func (c Condition) Valid() bool {
	switch c {
	case ConditionGood, ConditionBetter, ConditionBest:
		return true
	}
	return false
}

// Credentials are the login inputs
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the profile submitted on registration
type RegisterRequest struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// LoginResponse is the backend's answer to a successful login
type LoginResponse struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Profile is the read-only projection of the current user
type Profile struct {
	ID            string `json:"_id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// Equipment is a rentable piece of farm equipment as the backend returns it
type Equipment struct {
	ID                    string    `json:"_id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Condition             Condition `json:"condition"`
	RentalPrice           float64   `json:"rentalPrice"`
	AvailabilityDateStart time.Time `json:"availabilityDateStart"`
	AvailabilityDateEnd   time.Time `json:"availabilityDateEnd"`
	Image                 string    `json:"image"`
	OwnerName             string    `json:"ownerName"`
	Address               string    `json:"address"`
	ContactNumber         string    `json:"contactNumber"`
}

// Booking reserves one piece of equipment for a rental date. The backend
// populates the equipment reference into a full object.
type Booking struct {
	ID         string    `json:"_id"`
	Equipment  Equipment `json:"equipmentId"`
	RentalDate time.Time `json:"rentalDate"`
}

// BookingRequest creates or updates a booking
type BookingRequest struct {
	EquipmentID string `json:"equipmentId"`
	// RentalDate is a calendar date in YYYY-MM-DD form
	RentalDate string `json:"rentalDate"`
}

// Date is a calendar date as the backend's multipart contract encodes it
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// After reports whether d falls after other
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// DateRange is an availability window
type DateRange struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// ImageFile carries the binary image for a multipart submission
type ImageFile struct {
	// Name is the client-side filename, e.g. "tractor.jpg"
	Name   string
	Reader io.Reader
}

// EquipmentForm holds the fields for equipment creation and update.
// All text fields are required; the image is required on create and
// optional on update.
type EquipmentForm struct {
	Name          string
	Description   string
	Condition     Condition
	RentalPrice   string
	Availability  DateRange
	OwnerName     string
	Address       string
	ContactNumber string
	Image         *ImageFile
}

// Validate checks required-field presence and the availability invariant
// before any network call is made.
func (f *EquipmentForm) Validate(requireImage bool) error {
	required := []struct {
		field string
		value string
	}{
		{"name", f.Name},
		{"description", f.Description},
		{"rentalPrice", f.RentalPrice},
		{"ownerName", f.OwnerName},
		{"address", f.Address},
		{"contactNumber", f.ContactNumber},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: fmt.Sprintf("%s is required", r.field)}
		}
	}

	if !f.Condition.Valid() {
		return &ValidationError{Field: "condition", Message: "condition must be Good, Better or Best"}
	}

	if f.Availability.Start.IsZero() || f.Availability.End.IsZero() {
		return &ValidationError{Field: "availabilityDate", Message: "availability date range is required"}
	}
	if f.Availability.Start.After(f.Availability.End) {
		return &ValidationError{Field: "availabilityDate", Message: "availability start must not be after end"}
	}

	if requireImage && f.Image == nil {
		return &ValidationError{Field: "image", Message: "image is required"}
	}

	return nil
}
