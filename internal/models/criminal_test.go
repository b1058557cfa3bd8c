package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Criminal {
	return Criminal{
		FirstName: "John",
		LastName:  "Smith",
		Age:       34,
		Gender:    GenderMale,
		CrimeType: CrimeTheft,
		Status:    StatusInCustody,
	}
}

func TestValidateAcceptsValidRecord(t *testing.T) {
	require.NoError(t, validRecord().Validate())
}

func TestValidateAgeBounds(t *testing.T) {
	for _, age := range []int{MinAge, MaxAge} {
		c := validRecord()
		c.Age = age
		assert.NoError(t, c.Validate(), "age %d should be accepted", age)
	}
	for _, age := range []int{MinAge - 1, MaxAge + 1, 0, -5} {
		c := validRecord()
		c.Age = age
		assert.Error(t, c.Validate(), "age %d should be rejected", age)
	}
}

func TestValidateRequiredNames(t *testing.T) {
	c := validRecord()
	c.FirstName = "   "
	require.ErrorContains(t, c.Validate(), "first name")

	c = validRecord()
	c.LastName = ""
	require.ErrorContains(t, c.Validate(), "last name")
}

func TestValidateEnums(t *testing.T) {
	c := validRecord()
	c.Gender = "Unknown"
	require.ErrorContains(t, c.Validate(), "gender")

	c = validRecord()
	c.CrimeType = "Jaywalking"
	require.ErrorContains(t, c.Validate(), "crime type")

	c = validRecord()
	c.Status = "Escaped"
	require.ErrorContains(t, c.Validate(), "status")

	for _, status := range Statuses {
		c = validRecord()
		c.Status = status
		assert.NoError(t, c.Validate())
	}
}

func TestValidateDescriptionLength(t *testing.T) {
	c := validRecord()
	c.Description = strings.Repeat("x", MaxDescriptionLength)
	require.NoError(t, c.Validate())

	c.Description = strings.Repeat("x", MaxDescriptionLength+1)
	require.ErrorContains(t, c.Validate(), "description")
}

func TestValidateImageURL(t *testing.T) {
	accepted := []string{
		"",
		"http://example.com/mugshot.jpg",
		"https://example.com/mugshot.png",
		"data:image/png;base64,iVBORw0KGgo=",
	}
	for _, url := range accepted {
		c := validRecord()
		c.ImageURL = url
		assert.NoError(t, c.Validate(), "imageUrl %q should be accepted", url)
	}

	rejected := []string{
		"ftp://example.com/mugshot.jpg",
		"mugshot.jpg",
		"data:text/plain;base64,aGVsbG8=",
	}
	for _, url := range rejected {
		c := validRecord()
		c.ImageURL = url
		assert.Error(t, c.Validate(), "imageUrl %q should be rejected", url)
	}
}
