package compiler

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DefaultExtensions lists the namespaces a compile enables when Options
// leaves Extensions nil.
var DefaultExtensions = []string{"strings", "base64", "network", "optional", "time", "math"}

var dottedIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Options configures a single Compile call.
type Options struct {
	// Container is the dotted namespace prefix unqualified identifiers
	// resolve against. Empty means the root container.
	Container string `validate:"omitempty,dotted_ident"`

	// DisableMacros turns off has/all/exists/exists_one/map/filter/optMap/
	// optFlatMap expansion.
	DisableMacros bool

	// Extensions names the extension namespaces to register (see
	// ext.NSStrings etc.). Nil selects DefaultExtensions.
	Extensions []string `validate:"omitempty,dive,oneof=strings base64 network optional time math"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("dotted_ident", func(fl validator.FieldLevel) bool {
		return dottedIdentPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate reports whether opts is well-formed, before any compile is
// attempted.
func (o Options) Validate() error {
	return validate.Struct(o)
}

func (o Options) extensions() []string {
	if o.Extensions == nil {
		return DefaultExtensions
	}
	return o.Extensions
}
