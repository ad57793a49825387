package list

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/memory"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/cmd/application"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/catalogs"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/library"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func testService(t *testing.T) library.Service {
	t.Helper()
	foundation := media.NewBook("Foundation", "Isaac Asimov", time.Date(1951, 5, 1, 0, 0, 0, 0, time.UTC), "Gnome", 255)
	dune := media.NewBook("Dune", "Frank Herbert", time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), "Chilton", 412)
	nature := media.NewMagazine("Nature", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), "Springer", 7998)

	c, err := catalogs.New(memory.NewStorage(foundation, dune, nature), catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	return library.New(c, library.WithLogger(logging.NewNopLogger()))
}

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func titles(t *testing.T, out string) []string {
	t.Helper()
	var records []persistence.Record
	require.NoError(t, json.Unmarshal([]byte(out), &records), out)
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Title
	}
	return names
}

func TestListSortOrders(t *testing.T) {
	svc := testService(t)
	app := &application.Mock{
		ServiceFunc:      func() (library.Service, error) { return svc, nil },
		OutputFormatFunc: func() string { return "json" },
	}

	tests := []struct {
		sort string
		want []string
	}{
		{"", []string{"Foundation", "Dune", "Nature"}},
		{"title", []string{"Dune", "Foundation", "Nature"}},
		{"date", []string{"Nature", "Dune", "Foundation"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			out, err := execute(t, app, "--sort", tt.sort)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(t, out))
		})
	}
}

func TestListKindFilter(t *testing.T) {
	svc := testService(t)
	app := &application.Mock{
		ServiceFunc:      func() (library.Service, error) { return svc, nil },
		OutputFormatFunc: func() string { return "json" },
	}

	out, err := execute(t, app, "--kind", "magazine")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nature"}, titles(t, out))
}

func TestListTable(t *testing.T) {
	svc := testService(t)
	app := &application.Mock{
		ServiceFunc: func() (library.Service, error) { return svc, nil },
	}

	out, err := execute(t, app, "-s", "title")
	require.NoError(t, err)
	assert.Contains(t, out, "Dune")
	assert.Less(t, bytes.Index([]byte(out), []byte("Dune")), bytes.Index([]byte(out), []byte("Foundation")))
}

func TestListErrors(t *testing.T) {
	svc := testService(t)
	app := &application.Mock{
		ServiceFunc: func() (library.Service, error) { return svc, nil },
	}

	_, err := execute(t, app, "--sort", "pages")
	assert.Error(t, err)

	_, err = execute(t, app, "--kind", "dvd")
	assert.Error(t, err)

	failing := &application.Mock{
		ServiceFunc: func() (library.Service, error) { return nil, errors.New("storage offline") },
	}
	_, err = execute(t, failing, "-s", "title")
	assert.EqualError(t, err, "storage offline")
}
