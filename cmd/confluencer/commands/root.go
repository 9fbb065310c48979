package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confluencer",
	Short: "Manage Confluence pages and attachments from the command line",
	Long: `Confluencer is a client for the Confluence REST API. It resolves spaces
and pages by name, performs page and attachment CRUD, and can fetch page
content as storage format or markdown.`,
	Example: `  confluencer get-page --space DS --page "Page about DS"
  confluencer add-page --space DS --page "New page" --body-file body.html
  confluencer upload-attachment demo.txt --space DS --page "Page about DS"
  confluencer list-spaces`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
