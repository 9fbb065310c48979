package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updatePageSpace    string
	updatePageTitle    string
	updatePageBody     string
	updatePageBodyFile string
	updatePageTOC      bool
)

// updatePageCmd replaces the body of an existing page
var updatePageCmd = &cobra.Command{
	Use:   "update-page",
	Short: "Replace the body of an existing page",
	Long: `Update a page with a new storage-format body. The page's current version
is read immediately before the write and incremented; a concurrent update
in that window fails with a conflict and is never retried.`,
	Example: `  confluencer update-page --space DS --page "Page about DS" --body-file body.html
  confluencer update-page --space DS --page "Page about DS" --body "<p>Updated content</p>"`,
	RunE: runUpdatePage,
}

func runUpdatePage(cmd *cobra.Command, args []string) error {
	client, cfg, log, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, updatePageSpace)
	if err != nil {
		return err
	}

	if updatePageBody == "" && updatePageBodyFile == "" {
		return fmt.Errorf("one of --body or --body-file is required")
	}

	var body string
	if updatePageBody != "" {
		body = inlineBody(updatePageBody, updatePageTOC)
	} else {
		body, err = pageBody(updatePageBodyFile, updatePageTOC)
		if err != nil {
			return err
		}
	}

	if err := client.UpdatePage(updatePageTitle, spaceKey, body); err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	log.Info("Updated page '%s' in space %s", updatePageTitle, spaceKey)
	return nil
}

func init() {
	rootCmd.AddCommand(updatePageCmd)

	updatePageCmd.Flags().StringVarP(&updatePageSpace, "space", "s", "", "space key (defaults to config)")
	updatePageCmd.Flags().StringVarP(&updatePageTitle, "page", "p", "", "title of the page to update (required)")
	updatePageCmd.Flags().StringVar(&updatePageBody, "body", "", "inline storage-format body markup")
	updatePageCmd.Flags().StringVar(&updatePageBodyFile, "body-file", "", "file with storage-format body markup")
	updatePageCmd.Flags().BoolVar(&updatePageTOC, "toc", false, "prepend a table-of-contents macro to the body")

	if err := updatePageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
