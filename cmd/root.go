package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/catalogo/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `            _        _
   ___ __ _| |_ __ _| | ___   __ _  ___
  / __/ _' | __/ _' | |/ _ \ / _' |/ _ \
 | (_| (_| | || (_| | | (_) | (_| | (_) |
  \___\__,_|\__\__,_|_|\___/ \__, |\___/
                             |___/
`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalogo",
	Short: "Browse a categorized catalog of items.",
	Long: LOGO + `catalogo groups a collection of tagged items by category, colors each
group after its super-category and lets you filter and search it from the
command line, a terminal browser or a small web page.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.catalogo.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("source", "data.json", "Catalog location: a JSON file, an http(s) URL or sqlite://<path>")
	rootCmd.PersistentFlags().String("taxonomy", "", "YAML taxonomy file (default is the built-in taxonomy)")

	viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("taxonomy", rootCmd.PersistentFlags().Lookup("taxonomy"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Set default values for all keys
	viper.SetDefault("source", "data.json")
	viper.SetDefault("taxonomy", "")
	viper.SetDefault("dbpath", "catalogo.sqlite")
	viper.SetDefault("fetch.timeout", "30s")
	viper.SetDefault("fetch.retries", 0)
	viper.SetDefault("web.bind", ":9999")
	viper.SetDefault("web.username", "")
	viper.SetDefault("web.password", "")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".catalogo")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CATALOGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.catalogo.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		} else {
			fmt.Printf("Error reading config file: %s\n", err)
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
