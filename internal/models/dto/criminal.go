package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/models"
)

// ErrMissingRequired is returned when a create payload omits a required field.
var ErrMissingRequired = errors.New("required fields: firstName, lastName, age, gender, crimeType")

// Date unmarshals either an RFC 3339 timestamp or a bare YYYY-MM-DD value,
// which is what browser date inputs submit.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", raw)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

type CreateCriminalRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Age          *int   `json:"age"`
	Gender       string `json:"gender"`
	CrimeType    string `json:"crimeType"`
	Status       string `json:"status"`
	Description  string `json:"description"`
	DateArrested *Date  `json:"dateArrested"`
	ImageURL     string `json:"imageUrl"`
}

// ToCriminal checks required fields, applies defaults, and builds a record
// ready for validation. The caller assigns the id and store timestamps.
func (r CreateCriminalRequest) ToCriminal(now time.Time) (models.Criminal, error) {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" ||
		r.Age == nil || strings.TrimSpace(r.Gender) == "" || strings.TrimSpace(r.CrimeType) == "" {
		return models.Criminal{}, ErrMissingRequired
	}

	c := models.Criminal{
		FirstName:    strings.TrimSpace(r.FirstName),
		LastName:     strings.TrimSpace(r.LastName),
		Age:          *r.Age,
		Gender:       r.Gender,
		CrimeType:    r.CrimeType,
		Status:       r.Status,
		Description:  r.Description,
		DateArrested: now,
		ImageURL:     r.ImageURL,
	}
	if c.Status == "" {
		c.Status = models.StatusInCustody
	}
	if r.DateArrested != nil && !r.DateArrested.IsZero() {
		c.DateArrested = r.DateArrested.Time
	}
	if err := c.Validate(); err != nil {
		return models.Criminal{}, err
	}
	return c, nil
}

// UpdateCriminalRequest is a partial patch; nil fields are left untouched.
type UpdateCriminalRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Age          *int    `json:"age"`
	Gender       *string `json:"gender"`
	CrimeType    *string `json:"crimeType"`
	Status       *string `json:"status"`
	Description  *string `json:"description"`
	DateArrested *Date   `json:"dateArrested"`
	ImageURL     *string `json:"imageUrl"`
}

// Apply merges the supplied fields into an existing record and re-validates
// the result. Since stored records are always valid, this only rejects
// violations introduced by the patch itself.
func (r UpdateCriminalRequest) Apply(c *models.Criminal) error {
	if r.FirstName != nil {
		c.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		c.LastName = strings.TrimSpace(*r.LastName)
	}
	if r.Age != nil {
		c.Age = *r.Age
	}
	if r.Gender != nil {
		c.Gender = *r.Gender
	}
	if r.CrimeType != nil {
		c.CrimeType = *r.CrimeType
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.DateArrested != nil {
		c.DateArrested = r.DateArrested.Time
	}
	if r.ImageURL != nil {
		c.ImageURL = *r.ImageURL
	}
	return c.Validate()
}
