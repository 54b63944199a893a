package patch

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/erraggy/treepatch/patcherrors"
)

var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
})

// Validate checks patches for structural errors without applying them.
//
// Returns a slice of validation errors; an empty slice means every patch is
// well formed. Checks include:
//   - op is present and one of add, remove, replace, move
//   - move carries a from path
//   - length is non-negative and only set on remove and replace
//   - a move does not target a location inside its own source
func Validate(patches Patches) []patcherrors.ValidationError {
	var errs []patcherrors.ValidationError
	v := structValidator()

	for i, p := range patches {
		if err := v.Struct(p); err != nil {
			var fieldErrs validator.ValidationErrors
			if ok := asValidationErrors(err, &fieldErrs); !ok {
				errs = append(errs, patcherrors.ValidationError{Index: i, Message: err.Error()})
				continue
			}
			for _, fe := range fieldErrs {
				errs = append(errs, fieldError(i, fe))
			}
		}
		errs = append(errs, semanticErrors(i, p)...)
	}

	return errs
}

// IsValid reports whether [Validate] finds no errors.
func IsValid(patches Patches) bool {
	return len(Validate(patches)) == 0
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fe, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice type directly
	if ok {
		*target = fe
	}
	return ok
}

func fieldError(index int, fe validator.FieldError) patcherrors.ValidationError {
	ve := patcherrors.ValidationError{Index: index, Field: fe.Field()}
	switch fe.Tag() {
	case "required":
		ve.Message = "is required"
	case "required_if":
		ve.Message = "is required for move"
	case "oneof":
		ve.Value = fe.Value()
		ve.Message = fmt.Sprintf("must be one of %s", fe.Param())
	case "min":
		ve.Value = fe.Value()
		ve.Message = "must be non-negative"
	default:
		ve.Message = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return ve
}

func semanticErrors(index int, p Patch) []patcherrors.ValidationError {
	var errs []patcherrors.ValidationError

	if p.Length != nil && p.Op != OpRemove && p.Op != OpReplace {
		errs = append(errs, patcherrors.ValidationError{
			Index:   index,
			Field:   "length",
			Message: fmt.Sprintf("only applies to remove and replace, not %s", p.Op),
		})
	}

	if p.Op != OpMove && p.From != nil {
		errs = append(errs, patcherrors.ValidationError{
			Index:   index,
			Field:   "from",
			Message: fmt.Sprintf("only applies to move, not %s", p.Op),
		})
	}

	if p.Op == OpRemove && p.Path.IsRoot() {
		errs = append(errs, patcherrors.ValidationError{
			Index:   index,
			Field:   "path",
			Message: "remove cannot target the whole value",
		})
	}

	if p.Op == OpMove && p.From != nil && len(p.From) < len(p.Path) && p.Path[:len(p.From)].Equal(p.From) {
		errs = append(errs, patcherrors.ValidationError{
			Index:   index,
			Field:   "path",
			Value:   p.Path.Pointer(),
			Message: "move cannot place a value inside itself",
		})
	}

	return errs
}
