package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/catalogo/internal/utils"
	"github.com/sw33tLie/catalogo/pkg/catalog"
	"github.com/sw33tLie/catalogo/pkg/source"
	"github.com/sw33tLie/catalogo/pkg/storage"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Interact with the catalogo snapshot database",
	Long: `Keep a SQLite snapshot of the catalog. Point --source at sqlite://<path>
to browse a snapshot instead of the JSON collection.`,
}

func openExistingDB() (*storage.DB, string, error) {
	dbPath := viper.GetString("dbpath")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, dbPath, fmt.Errorf("database file not found: %s", dbPath)
	}
	db, err := storage.Open(dbPath)
	return db, dbPath, err
}

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the catalog from --source and replace the snapshot with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		location := viper.GetString("source")
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			location = from
		}
		items, err := source.Load(cmd.Context(), location, sourceOptions())
		if err != nil {
			return err
		}

		dbPath := viper.GetString("dbpath")
		lock, err := utils.NewDBLock(dbPath)
		if err != nil {
			return err
		}
		if err := lock.Lock(); err != nil {
			return err
		}
		defer lock.Unlock()

		db, err := storage.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.ReplaceItems(cmd.Context(), items)
		if err != nil {
			return err
		}
		utils.Log.Infof("Imported %d items from %s into %s", n, location, dbPath)
		return nil
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the snapshot as a JSON collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openExistingDB()
		if err != nil {
			return err
		}
		defer db.Close()

		items, err := db.ListItems(cmd.Context())
		if err != nil {
			return err
		}
		data, err := catalog.EncodeItems(items)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	},
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive shell to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := viper.GetString("dbpath")

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", dbPath)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		// Print schema first
		fmt.Println("--> Database schema:")
		schemaCmd := exec.Command(sqlitePath, dbPath, ".schema")
		schemaCmd.Stdout = os.Stdout
		schemaCmd.Stderr = os.Stderr
		if err := schemaCmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: couldn't retrieve schema: %v\n", err)
		}
		fmt.Println("\n--> Starting interactive shell... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, dbPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints how many items each category holds in the snapshot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openExistingDB()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(cmd.Context())
		if err != nil {
			return err
		}

		if len(stats) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No data in the database to generate stats.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "CATEGORY\tITEMS\t")

		var total int
		for _, s := range stats {
			fmt.Fprintf(w, "%s\t%d\t\n", s.Category, s.ItemCount)
			total += s.ItemCount
		}

		fmt.Fprintln(w, " \t \t")
		fmt.Fprintf(w, "TOTAL\t%d\t\n", total)

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(importCmd)
	dbCmd.AddCommand(exportCmd)
	dbCmd.AddCommand(shellCmd)
	dbCmd.AddCommand(statsCmd)

	dbCmd.PersistentFlags().String("dbpath", "catalogo.sqlite", "Path to SQLite DB file")
	viper.BindPFlag("dbpath", dbCmd.PersistentFlags().Lookup("dbpath"))

	importCmd.Flags().String("from", "", "Import from this location instead of --source")
}
