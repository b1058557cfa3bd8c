package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Accepted values for the Criminal enum fields.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"

	CrimeTheft    = "Theft"
	CrimeAssault  = "Assault"
	CrimeFraud    = "Fraud"
	CrimeHomicide = "Homicide"
	CrimeOther    = "Other"

	StatusWanted    = "Wanted"
	StatusInCustody = "In Custody"
	StatusReleased  = "Released"
)

const (
	MinAge               = 10
	MaxAge               = 120
	MaxDescriptionLength = 500
)

var (
	Genders    = []string{GenderMale, GenderFemale, GenderOther}
	CrimeTypes = []string{CrimeTheft, CrimeAssault, CrimeFraud, CrimeHomicide, CrimeOther}
	Statuses   = []string{StatusWanted, StatusInCustody, StatusReleased}
)

// imageURLPattern accepts http(s) URLs and inline base64 image data URIs.
var imageURLPattern = regexp.MustCompile(`^(https?://.+|data:image/[a-zA-Z]+;base64,.+)`)

// Criminal is a single case record.
type Criminal struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	CrimeType    string    `json:"crimeType"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	DateArrested time.Time `json:"dateArrested"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate checks every field constraint and reports the first violation.
// It is called before every persist, so a record that made it into the
// store is always well-formed.
func (c Criminal) Validate() error {
	if strings.TrimSpace(c.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return fmt.Errorf("last name is required")
	}
	if c.Age < MinAge || c.Age > MaxAge {
		return fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	if !contains(Genders, c.Gender) {
		return fmt.Errorf("gender must be one of: %s", strings.Join(Genders, ", "))
	}
	if !contains(CrimeTypes, c.CrimeType) {
		return fmt.Errorf("crime type must be one of: %s", strings.Join(CrimeTypes, ", "))
	}
	if !contains(Statuses, c.Status) {
		return fmt.Errorf("status must be one of: %s", strings.Join(Statuses, ", "))
	}
	if utf8.RuneCountInString(c.Description) > MaxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", MaxDescriptionLength)
	}
	if c.ImageURL != "" && !imageURLPattern.MatchString(c.ImageURL) {
		return fmt.Errorf("image must be a valid URL or base64 encoded data")
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
