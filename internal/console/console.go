// Package console implements the interactive menu of the media library.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/library"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// errBack returns from a submenu to the main menu.
var errBack = errors.New("back")

// Console drives the library service from a line-oriented terminal.
type Console struct {
	svc      library.Service
	exporter *export.Exporter
	prompt   *Prompter
	out      io.Writer
	logger   *zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger used for failed actions.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithExporter enables the export menu.
func WithExporter(e *export.Exporter) Option {
	return func(c *Console) {
		c.exporter = e
	}
}

// New returns a console reading from in and writing to out.
func New(svc library.Service, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		svc:    svc,
		prompt: NewPrompter(in, out),
		out:    out,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user exits, the input ends, or ctx
// is done. Failed actions are reported and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	c.println("===================================================")
	c.println("  MEDIA LIBRARY")
	c.println("===================================================")

	actions := map[int]func(context.Context) error{
		1: c.addMenu,
		2: c.viewMenu,
		3: c.searchMenu,
		4: c.collectionMenu,
		5: c.exportMenu,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("\nMAIN MENU")
		c.println("1. Add media or collection")
		c.println("2. View all media")
		c.println("3. Search media")
		c.println("4. Manage collections")
		c.println("5. Export")
		c.println("0. Exit")

		choice, err := c.prompt.Choice("Choose an option: ", 0, len(actions))
		if err != nil {
			return c.finish(err)
		}
		if choice == 0 {
			c.println("Goodbye.")
			return nil
		}

		if err := actions[choice](ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, errBack) {
				continue
			}
			c.fail(ctx, err)
		}
	}
}

func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) fail(ctx context.Context, err error) {
	c.printf("Error: %v\n", err)
	logging.FromContextOr(ctx, c.logger).Warn().Err(err).Msg("Console action failed")
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) submenu(title string, options ...string) (int, error) {
	c.printf("\n%s\n", title)
	for i, o := range options {
		c.printf("%d. %s\n", i+1, o)
	}
	c.println("0. Back")
	choice, err := c.prompt.Choice("Choose an option: ", 0, len(options))
	if err != nil {
		return 0, err
	}
	if choice == 0 {
		return 0, errBack
	}
	return choice, nil
}

func (c *Console) list(items []media.Item, empty string) {
	if len(items) == 0 {
		c.printf("\n%s\n", empty)
		return
	}
	c.println("\nRESULTS:")
	for _, item := range items {
		c.printf("- [%s] %s\n", item.ID(), item.Details())
	}
}
