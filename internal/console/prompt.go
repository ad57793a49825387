package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
)

var unsafeChars = strings.NewReplacer("<", "", ">", "", "\"", "", "'", "", "&", "")

// Sanitize strips markup characters and surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(unsafeChars.Replace(s))
}

// ParseInputDate parses a dd/mm/yyyy date.
func ParseInputDate(s string) (time.Time, error) {
	return time.Parse(constants.InputDateLayout, strings.TrimSpace(s))
}

// Prompter reads validated answers line by line. Invalid answers are
// reported and asked again; reads fail only when the input ends.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *Prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// Optional returns the sanitised answer, which may be empty.
func (p *Prompter) Optional(label string) (string, error) {
	s, err := p.line(label)
	if err != nil {
		return "", err
	}
	return Sanitize(s), nil
}

// String returns a non-empty sanitised answer.
func (p *Prompter) String(label string) (string, error) {
	for {
		s, err := p.Optional(label)
		if err != nil {
			return "", err
		}
		if s != "" {
			return s, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Try again.")
	}
}

// Int returns an integer answer.
func (p *Prompter) Int(label string) (int, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(s))
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Enter a whole number.")
	}
}

// Positive returns an integer greater than zero.
func (p *Prompter) Positive(label string) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid input. Enter a number greater than zero.")
	}
}

// Date returns a date entered as dd/mm/yyyy.
func (p *Prompter) Date(label string) (time.Time, error) {
	for {
		s, err := p.line(label)
		if err != nil {
			return time.Time{}, err
		}
		d, parseErr := ParseInputDate(s)
		if parseErr == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, "Invalid date. Use the format dd/mm/yyyy.")
	}
}

// Choice returns an option number in [lo, hi].
func (p *Prompter) Choice(label string, lo, hi int) (int, error) {
	for {
		n, err := p.Int(label)
		if err != nil {
			return 0, err
		}
		if n >= lo && n <= hi {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid option. Try again.")
	}
}
