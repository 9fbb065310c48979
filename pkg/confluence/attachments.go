package confluence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Attachment describes a binary object attached to a page. Attachments are
// versioned independently of their page.
type Attachment struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Version struct {
		Number int `json:"number"`
	} `json:"version,omitempty"`
	Metadata struct {
		Comment string `json:"comment,omitempty"`
	} `json:"metadata,omitempty"`
}

// ListAttachments returns the attachments of the page addressed by title
// within the space.
func (c *Client) ListAttachments(title, spaceKey string) ([]Attachment, error) {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return nil, err
	}
	return c.listPageAttachments(page.ID, "")
}

// UploadAttachment uploads a new attachment to the page addressed by title
// within the space. Uploading a filename that already exists on the page
// fails with ConflictError; use UpdateAttachment for that.
func (c *Client) UploadAttachment(filename string, content io.Reader, title, spaceKey, comment string) error {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return err
	}

	existing, err := c.listPageAttachments(page.ID, filename)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return &ConflictError{Resource: "attachment", Name: filename, Reason: "attachment already exists on page"}
	}

	return c.postAttachmentData(c.baseURL+"/rest/api/content/"+page.ID+"/child/attachment",
		filename, content, comment)
}

// UpdateAttachment uploads a new version of an existing attachment. The
// attachment is resolved by filename immediately before the write; a
// missing attachment fails with NotFoundError.
func (c *Client) UpdateAttachment(filename string, content io.Reader, title, spaceKey, comment string) error {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return err
	}

	attachment, err := c.findAttachment(page.ID, filename)
	if err != nil {
		return err
	}

	return c.postAttachmentData(c.baseURL+"/rest/api/content/"+page.ID+"/child/attachment/"+attachment.ID+"/data",
		filename, content, comment)
}

// DeleteAttachment resolves the attachment by filename and deletes it.
// Deleting an absent attachment reports NotFoundError.
func (c *Client) DeleteAttachment(filename, title, spaceKey string) error {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return err
	}

	attachment, err := c.findAttachment(page.ID, filename)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("DELETE", c.baseURL+"/rest/api/content/"+attachment.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: "attachment", Name: filename}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusError(resp, "delete attachment")
	}

	c.logger.Debug("Deleted attachment '%s' (id %s)", filename, attachment.ID)
	return nil
}

func (c *Client) findAttachment(pageID, filename string) (*Attachment, error) {
	attachments, err := c.listPageAttachments(pageID, filename)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		if attachments[i].Title == filename {
			return &attachments[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "attachment", Name: filename}
}

func (c *Client) listPageAttachments(pageID, filename string) ([]Attachment, error) {
	params := url.Values{}
	params.Add("expand", "version,metadata")
	if filename != "" {
		params.Add("filename", filename)
	}

	req, err := http.NewRequest("GET", c.baseURL+"/rest/api/content/"+pageID+"/child/attachment?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "list attachments")
	}

	var result struct {
		Results []Attachment `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result.Results, nil
}

func (c *Client) postAttachmentData(endpoint, filename string, content io.Reader, comment string) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to read attachment content: %w", err)
	}
	if comment != "" {
		if err := form.WriteField("comment", comment); err != nil {
			return fmt.Errorf("failed to write comment field: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest("POST", endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	// Required by the server for multipart uploads.
	req.Header.Set("X-Atlassian-Token", "nocheck")

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.classifyWriteStatus(resp, "attachment", filename)
	}

	c.logger.Debug("Uploaded attachment '%s'", filename)
	return nil
}
