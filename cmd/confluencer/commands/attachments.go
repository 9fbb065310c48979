package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	attachmentSpace   string
	attachmentPage    string
	attachmentComment string
)

var uploadAttachmentCmd = &cobra.Command{
	Use:   "upload-attachment FILE",
	Short: "Upload a new attachment to a page",
	Long: `Upload a local file as a new attachment on a page. Uploading a filename
that already exists on the page fails with a conflict; use
update-attachment to push a new version instead.`,
	Example: `  confluencer upload-attachment demo.txt --space DS --page "Page about DS" --comment "First upload!"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttachmentWrite(cmd, args[0], false)
	},
}

var updateAttachmentCmd = &cobra.Command{
	Use:   "update-attachment FILE",
	Short: "Upload a new version of an existing attachment",
	Long: `Push a new version of an attachment that already exists on a page. The
attachment is resolved by filename immediately before the write; a missing
attachment fails with not-found.`,
	Example: `  confluencer update-attachment demo.txt --space DS --page "Page about DS" --comment "Second upload!"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttachmentWrite(cmd, args[0], true)
	},
}

var deleteAttachmentCmd = &cobra.Command{
	Use:     "delete-attachment NAME",
	Short:   "Delete an attachment from a page",
	Example: `  confluencer delete-attachment demo.txt --space DS --page "Page about DS"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDeleteAttachment,
}

var listAttachmentsCmd = &cobra.Command{
	Use:     "list-attachments",
	Short:   "List the attachments of a page",
	Example: `  confluencer list-attachments --space DS --page "Page about DS"`,
	RunE:    runListAttachments,
}

func runAttachmentWrite(cmd *cobra.Command, path string, update bool) error {
	client, cfg, log, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, attachmentSpace)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open attachment file: %w", err)
	}
	defer file.Close()

	filename := filepath.Base(path)
	if update {
		err = client.UpdateAttachment(filename, file, attachmentPage, spaceKey, attachmentComment)
	} else {
		err = client.UploadAttachment(filename, file, attachmentPage, spaceKey, attachmentComment)
	}
	if err != nil {
		return fmt.Errorf("failed to upload attachment: %w", err)
	}

	log.Info("Uploaded attachment '%s' to page '%s'", filename, attachmentPage)
	return nil
}

func runDeleteAttachment(cmd *cobra.Command, args []string) error {
	client, cfg, log, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, attachmentSpace)
	if err != nil {
		return err
	}

	if err := client.DeleteAttachment(args[0], attachmentPage, spaceKey); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	log.Info("Deleted attachment '%s' from page '%s'", args[0], attachmentPage)
	return nil
}

func runListAttachments(cmd *cobra.Command, args []string) error {
	client, cfg, _, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := resolveSpaceKey(client, cfg, attachmentSpace)
	if err != nil {
		return err
	}

	attachments, err := client.ListAttachments(attachmentPage, spaceKey)
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	if len(attachments) == 0 {
		cmd.Println("No attachments found")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "ID", "Version", "Comment")
	for _, att := range attachments {
		_ = table.Append(att.Title, att.ID, fmt.Sprintf("%d", att.Version.Number), att.Metadata.Comment)
	}
	_ = table.Render()

	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{uploadAttachmentCmd, updateAttachmentCmd, deleteAttachmentCmd, listAttachmentsCmd} {
		rootCmd.AddCommand(cmd)
		cmd.Flags().StringVarP(&attachmentSpace, "space", "s", "", "space key (defaults to config)")
		cmd.Flags().StringVarP(&attachmentPage, "page", "p", "", "title of the page (required)")
		if err := cmd.MarkFlagRequired("page"); err != nil {
			panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
		}
	}
	uploadAttachmentCmd.Flags().StringVar(&attachmentComment, "comment", "", "comment to attach to the upload")
	updateAttachmentCmd.Flags().StringVar(&attachmentComment, "comment", "", "comment to attach to the upload")
}
