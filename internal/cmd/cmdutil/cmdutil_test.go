package cmdutil

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/output"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func TestParseDate(t *testing.T) {
	want := time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC)

	got, err := ParseDate("published", "1965-08-01")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ParseDate("published", "01/08/1965")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ParseDate("published", "Aug 1 1965")
	assert.True(t, errors.IsValidationError(err))
}

func TestOutputFormat(t *testing.T) {
	f, err := OutputFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, f)

	_, err = OutputFormat("xml")
	assert.Error(t, err)
}

func TestRequireFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("title", "", "")
	cmd.Flags().Int("pages", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--title", "  <Dune>  ", "--pages", "-1"}))

	title, err := RequireString(cmd, "title")
	require.NoError(t, err)
	assert.Equal(t, "Dune", title)

	_, err = RequirePositive(cmd, "pages")
	assert.True(t, errors.IsValidationError(err))
}

func TestParseKindArg(t *testing.T) {
	kind, err := ParseKindArg("")
	require.NoError(t, err)
	assert.Equal(t, media.Kind(""), kind)

	kind, err = ParseKindArg("Magazine")
	require.NoError(t, err)
	assert.Equal(t, media.KindMagazine, kind)

	_, err = ParseKindArg("dvd")
	assert.True(t, errors.IsValidationError(err))
}
