package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/catalogo/pkg/catalog"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category controls of the catalog",
	Long: `Print each super-category with the sub-categories that are the primary
category of at least one item, and how many items each holds. With --all the
whole taxonomy is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if all {
			for _, sc := range session.Taxonomy().SuperCategories() {
				fmt.Fprintf(out, "%s [%s]\n", sc.Name, sc.Color)
				for _, sub := range sc.Subcategories {
					fmt.Fprintf(out, "  %s\n", sub)
				}
			}
			return nil
		}

		counts := catalog.Group(session.Items(selectionState("", ""))).Buckets
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "%s\t%d\t\n", catalog.AllControl, session.Len())
		for _, c := range session.Controls() {
			fmt.Fprintf(w, "%s [%s]\t\t\n", c.SuperCategory, c.Color)
			for _, sub := range c.Subcategories {
				fmt.Fprintf(w, "  %s\t%d\t\n", sub, len(counts[sub]))
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.Flags().Bool("all", false, "Print the whole taxonomy")
}
