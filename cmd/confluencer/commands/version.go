package commands

import (
	"github.com/spf13/cobra"

	"confluencer/pkg/version"
)

var shortVersion bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version information for Confluencer including build details.

The version command shows the current version along with build information
such as Git commit, build date, Go version, and platform.`,
	Example: `  confluencer version         # Show full version information
  confluencer version --short # Show only version number`,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	buildInfo := version.Get()

	if shortVersion {
		cmd.Println(buildInfo.Version)
	} else {
		cmd.Println(buildInfo.String())
	}

	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "print only the version number")
}
