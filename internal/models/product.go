package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status enumerates product availability states.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusDisabled  Status = "DISABLED"
)

// ParseStatus converts a raw string into a Status.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusDisabled:
		return StatusDisabled, nil
	}
	return "", &ValidationError{Field: "status", Message: "status must be AVAILABLE or DISABLED"}
}

// Valid reports whether s is one of the known states.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusDisabled
}

// Product represents a catalog entry.
// Fields are tagged for DB scanning, JSON serialization, and validation.
type Product struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" validate:"required"`
	ImgURL      string    `db:"img_url" json:"img_url" validate:"omitempty,url"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price" validate:"gte=0"`
	Rating      float64   `db:"rating" json:"rating" validate:"gte=0,lte=5"`
	Category    string    `db:"category" json:"category" validate:"max=120"`
	Status      Status    `db:"status" json:"status" validate:"oneof=AVAILABLE DISABLED"`
	Likes       int       `db:"likes" json:"likes" validate:"gte=0"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

var validate = validator.New()

// ApplyDefaults fills fields a create request may omit. The default status
// comes from configuration; likes always start at zero unless set explicitly.
func (p *Product) ApplyDefaults(defaultStatus Status) {
	if p.Status == "" {
		p.Status = defaultStatus
	}
}

// Validate checks field-level constraints and returns a *ValidationError
// describing the first violation. Store errors never originate here.
func (p *Product) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	return translateFieldError(verrs[0])
}

// translateFieldError maps a validator field error to a message the API
// contract promises (clients match on these strings).
func translateFieldError(fe validator.FieldError) *ValidationError {
	switch fe.StructField() {
	case "Name":
		return &ValidationError{Field: "name", Message: "name is required"}
	case "ImgURL":
		return &ValidationError{Field: "img_url", Message: "img_url must be a valid URL"}
	case "Price":
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	case "Rating":
		return &ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	case "Category":
		return &ValidationError{Field: "category", Message: "category must be at most 120 characters"}
	case "Status":
		return &ValidationError{Field: "status", Message: "status must be AVAILABLE or DISABLED"}
	case "Likes":
		return &ValidationError{Field: "likes", Message: "likes must not be negative"}
	}
	return &ValidationError{Field: fe.Field(), Message: fmt.Sprintf("%s is invalid", fe.Field())}
}
