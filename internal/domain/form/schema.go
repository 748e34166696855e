package form

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field format rules live on the Values struct tags; this file wires the
// validator instance and the custom tags, and flattens validation errors
// into dotted-path → reason maps. Rules fire only on non-empty leaves:
// required-ness is the step gate's concern, format is the schema's.

var (
	validate *validator.Validate

	timeWindowRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

	timeWindowTag = "timewindow"
	plateTag      = "plate"
)

func init() {
	validate = validator.New()

	// Use JSON tag names so error paths match the wizard's field paths.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(timeWindowTag, timeWindowValidation)
	_ = validate.RegisterValidation(plateTag, plateValidation)
}

func timeWindowValidation(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return timeWindowRe.MatchString(s)
}

func plateValidation(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return len(strings.TrimSpace(s)) >= 4
}

// FieldError is the reason a leaf failed validation.
type FieldError string

const (
	ReasonMissing   FieldError = "missing"
	ReasonMalformed FieldError = "malformed"
	ReasonTooShort  FieldError = "too_short"
)

// Check validates the candidate values and returns, per dotted field path,
// the failure reason. An empty map means the values pass the schema.
// Pure function of its input; no side effects.
func Check(v Values) map[string]FieldError {
	out := map[string]FieldError{}
	err := validate.Struct(v)
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-field error (bad schema wiring); report nothing rather
		// than invent a path.
		return out
	}
	for _, fe := range verrs {
		out[fieldPath(fe)] = reasonFor(fe.Tag())
	}
	return out
}

// NormalizeLicensePlate is applied when the plate field loses focus:
// surrounding whitespace is dropped and the plate is upper-cased.
func NormalizeLicensePlate(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func fieldPath(fe validator.FieldError) string {
	// Namespace is "Values.client.name"; drop the struct root.
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reasonFor(tag string) FieldError {
	switch tag {
	case "required":
		return ReasonMissing
	case "min", plateTag:
		return ReasonTooShort
	default:
		return ReasonMalformed
	}
}
