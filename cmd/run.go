package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"tabsresp/internal/tui"
	"tabsresp/internal/tui/design"
	"tabsresp/pkg/logging"
)

func newRunCmd() *cobra.Command {
	var (
		flags widgetFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "run <file.html|->",
		Short: "Show an enhanced document in an interactive terminal UI",
		Long: `Parses the document, enhances every matching container and shows the
result. Resizing the terminal crosses the responsive breakpoint: each column
counts as globalSettings.cellWidth pixels (8 by default).

Keys: tab/shift+tab move focus, enter/space open or close, arrow keys move
between tabs or headers, m switches mode, y copies the enhanced markup,
L shows the activity log, ? shows all keys, q quits.

With --watch the document is parsed and enhanced again on every save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			if dark, forced := cfg.GlobalSettings.DarkTheme(); forced {
				design.Initialize(dark)
			}

			logChan := logging.InitForTUI(logLevel(cfg))
			defer logging.CloseTUIChannel()

			model := tui.NewModel(filepath.Base(args[0]), doc, cfg, logChan)
			if watch && args[0] != "-" {
				fw, err := tui.WatchFile(args[0])
				if err != nil {
					return err
				}
				defer fw.Close()
				model.WithWatcher(fw)
			}
			_, err = tui.NewProgram(model, cfg.GlobalSettings.UseAltScreen()).Run()
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the document when the file changes")
	return cmd
}
