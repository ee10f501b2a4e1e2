package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/sw33tLie/catalogo/internal/tui"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long: `Open an interactive terminal browser.

Keys: / search, enter run search, esc leave the search field, a show all,
1-9 open a super-category, up/down scroll, q quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}
		_, err = tea.NewProgram(tui.New(session), tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
