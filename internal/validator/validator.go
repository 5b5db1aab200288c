// Package validator registers custom binding validators.
package validator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// clubNameRegex matches club names: letters and digits in words separated by single spaces,
// hyphens, apostrophes or ampersands. Names are used as URL path segments.
var clubNameRegex = regexp.MustCompile(`^[A-Za-z0-9]+([ '&-][A-Za-z0-9]+)*$`)

// reservedClubNames collide with static route segments under /clubs.
var reservedClubNames = map[string]struct{}{
	"clubs": {},
}

// IsValidClubName reports whether name can be used as a club key.
func IsValidClubName(name string) bool {
	if _, reserved := reservedClubNames[strings.ToLower(name)]; reserved {
		return false
	}
	return clubNameRegex.MatchString(name)
}

// validateClubName validates that a string is a valid club name
func validateClubName(fl validator.FieldLevel) bool {
	return IsValidClubName(fl.Field().String())
}

var registerOnce sync.Once

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("clubname", validateClubName)
		}
	})
}

// Struct checks the binding tags of a request payload.
func Struct(obj interface{}) error {
	RegisterCustomValidators()
	return binding.Validator.ValidateStruct(obj)
}
