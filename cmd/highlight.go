package cmd

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
)

// Values of the --highlight flag.
const (
	highlightAuto   = "auto"
	highlightAlways = "always"
	highlightNever  = "never"
)

func validHighlight(mode string) error {
	switch mode {
	case highlightAuto, highlightAlways, highlightNever:
		return nil
	}
	return fmt.Errorf("--highlight must be %q, %q or %q, got %q", highlightAuto, highlightAlways, highlightNever, mode)
}

// writeMarkup prints markup, syntax highlighted when mode asks for it. In
// auto mode w must be a colour capable terminal and NO_COLOR must be unset.
func writeMarkup(w io.Writer, markup, mode string) error {
	if !shouldHighlight(w, mode) {
		_, err := io.WriteString(w, markup)
		return err
	}
	return quick.Highlight(w, markup, "html", "terminal256", "monokai")
}

func shouldHighlight(w io.Writer, mode string) bool {
	switch mode {
	case highlightAlways:
		return true
	case highlightNever:
		return false
	}
	return termenv.NewOutput(w).Profile != termenv.Ascii
}
