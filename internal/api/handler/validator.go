package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagMessages formats the validation tags used by the request schemas. The
// %s placeholders are the lowercased field name and the tag parameter.
var tagMessages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be at least %s",
	"lte":      "%s must be at most %s",
	"min":      "%s must be at least %s",
	"oneof":    "%s must be one of: %s",
}

// echoValidator adapts go-playground/validator to echo's Validator hook so
// handlers can call c.Validate on bound requests.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate reports all failing fields in one message, joined with "; ".
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		if format, ok := tagMessages[fe.Tag()]; ok {
			if strings.Count(format, "%s") == 2 {
				msgs = append(msgs, fmt.Sprintf(format, field, fe.Param()))
			} else {
				msgs = append(msgs, fmt.Sprintf(format, field))
			}
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", field, fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
