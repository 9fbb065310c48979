package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deletePageSpace string
	deletePageTitle string
)

// deletePageCmd deletes a page
var deletePageCmd = &cobra.Command{
	Use:   "delete-page",
	Short: "Delete a page",
	Long: `Delete a page addressed by title. Deleting a page that does not exist
reports not-found, including when the page was already deleted.`,
	Example: `  confluencer delete-page --space DS --page "Page about DS"`,
	RunE:    runDeletePage,
}

func runDeletePage(cmd *cobra.Command, args []string) error {
	client, cfg, log, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, deletePageSpace)
	if err != nil {
		return err
	}

	if err := client.DeletePage(deletePageTitle, spaceKey); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	log.Info("Deleted page '%s' from space %s", deletePageTitle, spaceKey)
	return nil
}

func init() {
	rootCmd.AddCommand(deletePageCmd)

	deletePageCmd.Flags().StringVarP(&deletePageSpace, "space", "s", "", "space key (defaults to config)")
	deletePageCmd.Flags().StringVarP(&deletePageTitle, "page", "p", "", "title of the page to delete (required)")

	if err := deletePageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
