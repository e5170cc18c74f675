package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/stencildev/stencil/internal/encoding"
	stencilerrors "github.com/stencildev/stencil/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	varNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("var_name", func(fl validator.FieldLevel) bool {
			return varNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("file_mode", func(fl validator.FieldLevel) bool {
			_, err := strconv.ParseUint(fl.Field().String(), 8, 32)
			return err == nil
		})

		_ = v.RegisterValidation("encoding_name", func(fl validator.FieldLevel) bool {
			return encoding.Supported(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema and cross-field validation on the
// manifest. Path normalization and duplicate detection are the engine's
// responsibility; this layer checks document shape only.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return stencilerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(m); err != nil {
		return convertValidationError(err)
	}

	for i, entry := range m.Entries {
		if err := validateEntry(entry, i); err != nil {
			return err
		}
	}

	return nil
}

// validateEntry validates a single entry independent of other manifest
// properties.
func validateEntry(entry Entry, index int) error {
	v := validatorInstance()

	switch entry.Type {
	case "directory":
		if entry.Directory == nil {
			return stencilerrors.NewValidationError(fieldForEntry(index, "type"), "directory configuration is required", nil)
		}
		if err := v.Struct(entry.Directory); err != nil {
			return convertValidationError(err)
		}
	case "file":
		if entry.File == nil {
			return stencilerrors.NewValidationError(fieldForEntry(index, "type"), "file configuration is required", nil)
		}
		if err := v.Struct(entry.File); err != nil {
			return convertValidationError(err)
		}
		hasSource := entry.File.Source != ""
		if entry.File.ContentSet == hasSource {
			return stencilerrors.NewValidationError(
				fieldForEntry(index, "content"),
				"exactly one of content or source must be set",
				nil,
			)
		}
	default:
		return stencilerrors.NewValidationError(fieldForEntry(index, "type"), fmt.Sprintf("unknown entry type %q", entry.Type), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return stencilerrors.NewValidationError(field, msg, err)
	}

	return stencilerrors.NewValidationError("manifest", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForEntry(index int, field string) string {
	return fmt.Sprintf("entries[%d].%s", index, field)
}
