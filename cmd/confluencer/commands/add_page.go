package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"confluencer/pkg/markup"
)

var (
	addPageSpace    string
	addPageTitle    string
	addPageBodyFile string
	addPageParent   string
	addPageTOC      bool
)

// addPageCmd creates a new page
var addPageCmd = &cobra.Command{
	Use:   "add-page",
	Short: "Create a new page",
	Long: `Create a new page in a space. The body is read from --body-file and must
already be storage-format markup; without --body-file an empty page is
created. Creating a title that already exists in the space fails with a
conflict.`,
	Example: `  confluencer add-page --space DS --page "Page about DS"
  confluencer add-page --space DS --page "Child page" --parent "Page about DS" --body-file body.html
  confluencer add-page --space DS --page "Runbook" --body-file body.html --toc`,
	RunE: runAddPage,
}

func runAddPage(cmd *cobra.Command, args []string) error {
	client, cfg, log, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, addPageSpace)
	if err != nil {
		return err
	}

	body, err := pageBody(addPageBodyFile, addPageTOC)
	if err != nil {
		return err
	}

	var id string
	if addPageParent != "" {
		id, err = client.AddChildPage(addPageTitle, spaceKey, addPageParent, body)
	} else {
		id, err = client.AddPage(addPageTitle, spaceKey, body)
	}
	if err != nil {
		return fmt.Errorf("failed to add page: %w", err)
	}

	log.Info("Created page '%s' (id %s) in space %s", addPageTitle, id, spaceKey)
	cmd.Println(id)
	return nil
}

// pageBody assembles the body for add-page and update-page. --toc prepends
// the table-of-contents macro through the markup builder.
func pageBody(bodyFile string, toc bool) (string, error) {
	builder := markup.NewBuilder()
	if toc {
		builder.AddTableOfContents()
	}
	if bodyFile != "" {
		data, err := os.ReadFile(bodyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read body file: %w", err)
		}
		builder.AddCustomHTML(string(data))
	}
	return builder.Render(), nil
}

// inlineBody assembles a body from markup passed directly on the command line.
func inlineBody(markupText string, toc bool) string {
	builder := markup.NewBuilder()
	if toc {
		builder.AddTableOfContents()
	}
	builder.AddCustomHTML(markupText)
	return builder.Render()
}

func init() {
	rootCmd.AddCommand(addPageCmd)

	addPageCmd.Flags().StringVarP(&addPageSpace, "space", "s", "", "space key (defaults to config)")
	addPageCmd.Flags().StringVarP(&addPageTitle, "page", "p", "", "title of the page to create (required)")
	addPageCmd.Flags().StringVar(&addPageBodyFile, "body-file", "", "file with storage-format body markup")
	addPageCmd.Flags().StringVar(&addPageParent, "parent", "", "title of the parent page to create beneath")
	addPageCmd.Flags().BoolVar(&addPageTOC, "toc", false, "prepend a table-of-contents macro to the body")

	if err := addPageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
