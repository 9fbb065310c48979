package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// listSpacesCmd lists the spaces visible to the configured user
var listSpacesCmd = &cobra.Command{
	Use:     "list-spaces",
	Short:   "List the spaces visible to the configured user",
	Example: `  confluencer list-spaces`,
	RunE:    runListSpaces,
}

// resolveSpaceCmd resolves a space display name to its key
var resolveSpaceCmd = &cobra.Command{
	Use:   "resolve-space NAME",
	Short: "Resolve a space display name to its key",
	Long: `Look up a space by its display name and print its key. The match is
exact; a name carried by more than one space is reported as ambiguous
rather than silently picking one.`,
	Example: `  confluencer resolve-space "Data Science"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runResolveSpace,
}

func runListSpaces(cmd *cobra.Command, args []string) error {
	client, _, _, err := setup()
	if err != nil {
		return err
	}

	spaces, err := client.ListSpaces()
	if err != nil {
		return fmt.Errorf("failed to list spaces: %w", err)
	}

	if len(spaces) == 0 {
		cmd.Println("No spaces found")
		return nil
	}

	title := cases.Title(language.English)
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Key", "Name", "Type", "Status")
	for _, space := range spaces {
		_ = table.Append(space.Key, space.Name, title.String(space.Type), title.String(space.Status))
	}
	_ = table.Render()

	return nil
}

func runResolveSpace(cmd *cobra.Command, args []string) error {
	client, _, _, err := setup()
	if err != nil {
		return err
	}

	key, err := client.ResolveSpaceKey(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve space: %w", err)
	}

	cmd.Println(key)
	return nil
}

func init() {
	rootCmd.AddCommand(listSpacesCmd)
	rootCmd.AddCommand(resolveSpaceCmd)
}
