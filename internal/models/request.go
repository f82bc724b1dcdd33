package models

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/example/hiergen/internal/errors"
)

// ErrInvalidRequest is wrapped by every GenerationRequest validation failure.
var ErrInvalidRequest = errors.New("invalid generation request")

// identFragment matches a name_base that can be embedded verbatim after
// "<Prefix>_" in a C++ identifier and in a file name.
var identFragment = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("identfrag", func(fl validator.FieldLevel) bool {
		return identFragment.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// GenerationRequest is one (name_base, depth, output) triple. It is built once
// from CLI or suite input and never mutated.
type GenerationRequest struct {
	NameBase string `validate:"required,identfrag"`
	Depth    int    `validate:"min=1"`
	Output   string `validate:"required"`
}

// Validate rejects non-positive depths, name bases that are not identifier
// fragments, and empty output paths. Failures wrap ErrInvalidRequest.
func (r GenerationRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate generation request")
	}

	problems := make([]string, 0, len(fieldErrs))
	hints := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problem, hint := describeFieldError(fe)
		problems = append(problems, problem)
		hints = append(hints, hint)
	}

	return errors.WithHint(
		errors.Wrapf(ErrInvalidRequest, "%s", strings.Join(problems, "; ")),
		strings.Join(hints, "\n"),
	)
}

func describeFieldError(fe validator.FieldError) (problem, hint string) {
	switch fe.Field() {
	case "Depth":
		return fmt.Sprintf("depth %v is below 1", fe.Value()),
			"--depth counts classes root inclusive and must be at least 1"
	case "NameBase":
		if fe.Tag() == "required" {
			return "name_base is empty", "pass --name-base with a non-empty identifier fragment"
		}
		return fmt.Sprintf("name_base %q is not an identifier fragment", fe.Value()),
			"name_base may only contain ASCII letters, digits and underscores"
	case "Output":
		return "output is empty", "pass --output with the directory to write into"
	}
	return fe.Error(), "check the request fields"
}

// Absolute returns a copy of r whose Output is an absolute path, so file
// paths derived from it stay valid from any working directory.
func (r GenerationRequest) Absolute() (GenerationRequest, error) {
	output, err := filepath.Abs(r.Output)
	if err != nil {
		return r, errors.Wrapf(err, "failed to resolve output %s", r.Output)
	}
	r.Output = output
	return r, nil
}

// TargetKey identifies the files a request owns: two requests with the same
// key write the same paths, however their outputs are spelled.
func (r GenerationRequest) TargetKey() string {
	output, err := filepath.Abs(r.Output)
	if err != nil {
		output = filepath.Clean(r.Output)
	}
	return output + string(filepath.Separator) + r.NameBase
}
