package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/catalogo/pkg/browse"
	"github.com/sw33tLie/catalogo/pkg/catalog"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog grouped by category",
	Long: `Print the catalog grouped by primary category, in the order each category
first appears. Use --category to show a single category or --search to find
items by name, description or tag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		outputFlags, _ := cmd.Flags().GetString("output")
		delimiter, _ := cmd.Flags().GetString("delimiter")
		asJSON, _ := cmd.Flags().GetBool("json")

		if !asJSON {
			if err := catalog.ValidateOutputFlags(outputFlags); err != nil {
				return err
			}
		}

		session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}

		st := selectionState(category, search)
		view := session.Render(st)
		if view.Failed {
			return errors.New(view.Message)
		}

		if asJSON {
			data, err := catalog.EncodeItems(session.Items(st))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		return catalog.PrintPlan(cmd.OutOrStdout(), view.Groups, outputFlags, delimiter)
	},
}

// selectionState replays the flags as user actions. A category wins over a search.
func selectionState(category, search string) browse.State {
	st := browse.Initial()
	switch {
	case category != "":
		return st.SelectCategory(category)
	case search != "":
		return st.EditQuery(search).SubmitSearch()
	}
	return st
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("category", "c", "", "Show only items whose primary category is this one")
	listCmd.Flags().StringP("search", "s", "", "Show only items matching this text (case-insensitive)")
	listCmd.Flags().StringP("output", "o", catalog.DefaultOutputFlags, "Output flags. n=name d=description y=year l=link s=site t=tags c=category")
	listCmd.Flags().StringP("delimiter", "d", " | ", "Delimiter between output fields")
	listCmd.Flags().Bool("json", false, "Print the selected items as a JSON array")
}
