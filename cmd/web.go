package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/sw33tLie/catalogo/internal/server"
	"github.com/sw33tLie/catalogo/internal/utils"
)

// webCmd represents the web command
var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the catalogo web interface",
	Long:  `Start a web server that renders the catalog and serves it as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession(cmd.Context())
		if err != nil {
			return err
		}

		srv := server.New(session, viper.GetString("web.username"), viper.GetString("web.password"))
		if err := srv.Start(viper.GetString("web.bind")); err != nil {
			utils.Log.Errorf("Server failed: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(webCmd)

	webCmd.Flags().StringP("bind", "b", ":9999", "Address to bind the server to")
	webCmd.Flags().StringP("username", "u", "", "Username for basic auth (optional)")
	webCmd.Flags().StringP("password", "p", "", "Password for basic auth (optional)")

	viper.BindPFlag("web.bind", webCmd.Flags().Lookup("bind"))
	viper.BindPFlag("web.username", webCmd.Flags().Lookup("username"))
	viper.BindPFlag("web.password", webCmd.Flags().Lookup("password"))
}
