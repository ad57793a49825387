// Package cmdutil provides helpers shared by library commands.
package cmdutil

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/console"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// OutputFormat resolves the output format configured on the app, falling
// back to terminal detection.
func OutputFormat(configured string) (output.Format, error) {
	if _, err := output.ParseFormat(configured); err != nil {
		return "", err
	}
	return output.DetectFormat(configured), nil
}

// ParseDate accepts YYYY-MM-DD and dd/mm/yyyy.
func ParseDate(field, s string) (time.Time, error) {
	if d, err := media.ParseDate(s); err == nil {
		return d, nil
	}
	if d, err := console.ParseInputDate(s); err == nil {
		return d, nil
	}
	return time.Time{}, errors.NewValidationError(field, s, "want YYYY-MM-DD or dd/mm/yyyy")
}

// RequireString returns the sanitised flag value or a validation error
// when it is empty.
func RequireString(cmd *cobra.Command, name string) (string, error) {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}
	val = console.Sanitize(val)
	if val == "" {
		return "", errors.NewValidationError(name, val, "must not be empty")
	}
	return val, nil
}

// RequirePositive returns the flag value or a validation error when it is
// not greater than zero.
func RequirePositive(cmd *cobra.Command, name string) (int, error) {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, err
	}
	if val <= 0 {
		return 0, errors.NewValidationError(name, val, "must be greater than zero")
	}
	return val, nil
}

// ParseKindArg resolves a kind flag; empty means every kind.
func ParseKindArg(s string) (media.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	kind, err := media.ParseKind(s)
	if err != nil {
		return "", errors.WrapValidation("kind", err)
	}
	return kind, nil
}
