package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"tabsresp/internal/breakpoint"
	"tabsresp/internal/dom"
	"tabsresp/internal/tabsresp"
	"tabsresp/pkg/logging"
)

const (
	cliSubsystem = "CLI"

	maxSuggestionDistance = 2
)

// ErrUnknownStep is returned for a --keys entry render cannot replay.
var ErrUnknownStep = errors.New("unknown step")

var keyNames = map[string]int{
	"enter": dom.KeyEnter,
	"space": dom.KeySpace,
	"left":  dom.KeyLeft,
	"up":    dom.KeyUp,
	"right": dom.KeyRight,
	"down":  dom.KeyDown,
}

func newRenderCmd() *cobra.Command {
	var (
		flags     widgetFlags
		width     int
		steps     []string
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "render <file.html|->",
		Short: "Print a document after enhancement and optional interaction",
		Long: `Enhances the document without a terminal UI and prints the resulting markup.

--width sets the viewport width in pixels and is evaluated against the
responsive breakpoint before any step runs. --keys replays steps in order:

  enter, space, left, right, up, down   keydown on the focused toggle
  tab, shift+tab                        move focus along the tab stops
  click:<id>                            click the element with that id
  focus:<id>                            focus the element with that id
  mode:tabs, mode:accordion             switch mode explicitly

Keydowns with nothing focused go to the first tab stop.`,
		Example: `  tabsresp render page.html --width 480
  tabsresp render page.html --keys right,right,enter`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validHighlight(highlight); err != nil {
				return err
			}
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			logging.InitForCLI(logLevel(cfg), cmd.ErrOrStderr())

			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			matcher := breakpoint.NewMatcher()
			w := tabsresp.New(doc, cfg.Widget.Options(), matcher)
			if width > 0 {
				matcher.Evaluate(width)
			}
			logging.Info(cliSubsystem, "%d container(s) in %s mode", len(w.Containers()), w.Mode())

			for _, step := range steps {
				if err := replay(doc, w, strings.TrimSpace(step)); err != nil {
					return err
				}
			}

			markup, err := doc.HTML()
			if err != nil {
				return err
			}
			return writeMarkup(cmd.OutOrStdout(), markup, highlight)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in pixels, 0 leaves the initial mode")
	cmd.Flags().StringSliceVar(&steps, "keys", nil, "Comma separated interaction steps")
	cmd.Flags().StringVar(&highlight, "highlight", highlightAuto, `Syntax highlight the output: "auto", "always" or "never"`)
	return cmd
}

// replay performs one --keys step against the document.
func replay(doc *dom.Document, w *tabsresp.Widget, step string) error {
	if name, arg, ok := strings.Cut(step, ":"); ok {
		switch name {
		case "mode":
			mode := tabsresp.Mode(arg)
			if !mode.Valid() {
				return unknownStep(step)
			}
			w.ToggleMode(mode)
			return nil
		case "click", "focus":
			el := doc.GetElementByID(arg)
			if el == nil {
				return fmt.Errorf("step %q: no element with id %q", step, arg)
			}
			el.Focus()
			if name == "click" {
				el.Dispatch(dom.NewClick())
			}
			return nil
		}
		return unknownStep(step)
	}

	switch step {
	case "tab":
		dom.MoveFocus(w.TabStops(), 1)
		return nil
	case "shift+tab":
		dom.MoveFocus(w.TabStops(), -1)
		return nil
	}

	code, ok := keyNames[step]
	if !ok {
		return unknownStep(step)
	}
	target := doc.ActiveElement()
	if target == nil {
		stops := w.TabStops()
		if len(stops) == 0 {
			logging.Warn(cliSubsystem, "no tab stop for %q", step)
			return nil
		}
		target = stops[0]
		target.Focus()
	}
	target.Dispatch(dom.NewKeydown(code))
	return nil
}

// stepNames are the fixed spellings of --keys steps, used for suggestions.
var stepNames = []string{
	"enter", "space", "left", "up", "right", "down",
	"tab", "shift+tab", "mode:tabs", "mode:accordion",
}

// unknownStep builds an ErrUnknownStep error, suggesting the closest known
// step for what looks like a typo.
func unknownStep(step string) error {
	best, bestDist := "", maxSuggestionDistance+1
	for _, name := range stepNames {
		if d := levenshtein.ComputeDistance(step, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	if best == "" {
		return fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
	return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownStep, step, best)
}
