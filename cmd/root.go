package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tabsresp",
	Short: "Responsive tabs and accordions for HTML documents",
	Long: `tabsresp enhances the tab/accordion containers of an HTML document with
ARIA roles, keyboard handling and a responsive switch between tabs and an
accordion.

The interactive mode shows the enhanced document in the terminal, where the
terminal width drives the breakpoint. The render command runs the same
enhancement headlessly and prints the resulting markup.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unreadable documents, invalid configuration)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tabsresp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newVersionCmd())
}
