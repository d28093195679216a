package app

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9()\-. ]{5,19}$`)

func validateRequired(field, value string) []domain.ValidationError {
	if value == "" {
		return []domain.ValidationError{{Field: field, Message: "is required"}}
	}
	return nil
}

func validateMaxLength(field, value string, max int) []domain.ValidationError {
	if len([]rune(value)) > max {
		return []domain.ValidationError{{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}}
	}
	return nil
}

func validateName(field, value string) []domain.ValidationError {
	if errs := validateRequired(field, value); errs != nil {
		return errs
	}
	return validateMaxLength(field, value, constants.MaxNameLength)
}

func validateURL(field, value string) []domain.ValidationError {
	if value == "" {
		return nil
	}
	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return []domain.ValidationError{{Field: field, Message: "invalid URL format"}}
	}
	return validateMaxLength(field, value, constants.MaxLinkLength)
}

func validatePhone(field, value string) []domain.ValidationError {
	if value != "" && !phoneRegex.MatchString(value) {
		return []domain.ValidationError{{Field: field, Message: "invalid phone number"}}
	}
	return nil
}

func validateGenres(field string, tags []string) []domain.ValidationError {
	for _, tag := range tags {
		if strings.Contains(tag, ",") {
			return []domain.ValidationError{{Field: field, Message: fmt.Sprintf("genre %q must not contain a comma", tag)}}
		}
	}
	return nil
}

func validateID(field string, id int64) []domain.ValidationError {
	if id <= 0 {
		return []domain.ValidationError{{Field: field, Message: "is required"}}
	}
	return nil
}

// parseDateTime reads value in the YYYY-MM-DD HH:MM:SS layout in loc.
func parseDateTime(field, value string, loc *time.Location) (time.Time, []domain.ValidationError) {
	if value == "" {
		return time.Time{}, validateRequired(field, value)
	}
	t, err := time.ParseInLocation(constants.DateTimeLayout, value, loc)
	if err != nil {
		return time.Time{}, []domain.ValidationError{{Field: field, Message: "must use the format YYYY-MM-DD HH:MM:SS"}}
	}
	return t.UTC(), nil
}

// parseYear treats an empty value as no year.
func parseYear(field, value string) (*int, []domain.ValidationError) {
	if value == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return nil, []domain.ValidationError{{Field: field, Message: "must be a number"}}
	}
	if year < 1900 || year > 2100 {
		return nil, []domain.ValidationError{{Field: field, Message: "must be between 1900 and 2100"}}
	}
	return &year, nil
}
