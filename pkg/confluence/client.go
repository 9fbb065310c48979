// Package confluence is a client for the Confluence REST API. It resolves
// human-readable addressing (space name, page title, attachment filename)
// into the identifiers and versions the API requires, and performs page and
// attachment CRUD against it.
//
// Identifiers are re-resolved from names immediately before every use; the
// client caches nothing between calls and never retries. Concurrent writers
// to the same page are arbitrated solely by the server's version check,
// surfaced as ConflictError.
package confluence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"confluencer/pkg/logger"
)

type Client struct {
	baseURL  string
	username string
	apiToken string
	client   *http.Client
	logger   *logger.Logger
}

// Page mirrors the content representation returned by the API.
type Page struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Body  struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body,omitempty"`
	Space struct {
		Key string `json:"key"`
	} `json:"space,omitempty"`
	Version struct {
		Number int `json:"number"`
	} `json:"version,omitempty"`
}

func New(baseURL, username, apiToken string) *Client {
	return NewClient(baseURL, username, apiToken, logger.New(false))
}

func NewClient(baseURL, username, apiToken string, log *logger.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		apiToken: apiToken,
		client:   &http.Client{},
		logger:   log,
	}
}

// ResolvePageID looks up a page by title within a space and returns its id.
func (c *Client) ResolvePageID(title, spaceKey string) (string, error) {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return "", err
	}
	return page.ID, nil
}

// GetPageContents returns the current storage-format body of a page.
func (c *Client) GetPageContents(title, spaceKey string) (string, error) {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return "", err
	}
	return page.Body.Storage.Value, nil
}

// AddPage creates a new page in the space and returns its id. Creating a
// page whose title already exists in the space fails with ConflictError.
func (c *Client) AddPage(title, spaceKey, body string) (string, error) {
	return c.createPage(title, spaceKey, body, "")
}

// AddChildPage creates a new page beneath an existing parent page. The
// parent is resolved by title within the same space.
func (c *Client) AddChildPage(title, spaceKey, parentTitle, body string) (string, error) {
	parent, err := c.findPage(parentTitle, spaceKey)
	if err != nil {
		return "", err
	}
	return c.createPage(title, spaceKey, body, parent.ID)
}

func (c *Client) createPage(title, spaceKey, body, parentID string) (string, error) {
	payload := map[string]interface{}{
		"type":  "page",
		"title": title,
		"space": map[string]string{"key": spaceKey},
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          body,
				"representation": "storage",
			},
		},
	}
	if parentID != "" {
		payload["ancestors"] = []map[string]string{{"id": parentID}}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal page data: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/rest/api/content", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyWriteStatus(resp, "page", title)
	}

	var result Page
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Created page '%s' in space '%s' with id %s", title, spaceKey, result.ID)
	return result.ID, nil
}

// UpdatePage resolves the page's current id and version and submits a new
// version with the given body. A missing page fails with NotFoundError
// before any write is issued; a version invalidated by a concurrent update
// surfaces as ConflictError.
func (c *Client) UpdatePage(title, spaceKey, body string) error {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"id":    page.ID,
		"type":  "page",
		"title": page.Title,
		"space": map[string]string{"key": spaceKey},
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          body,
				"representation": "storage",
			},
		},
		"version": map[string]interface{}{
			"number": page.Version.Number + 1,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal page data: %w", err)
	}

	req, err := http.NewRequest("PUT", c.baseURL+"/rest/api/content/"+page.ID, bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.classifyWriteStatus(resp, "page", title)
	}

	c.logger.Debug("Updated page '%s' to version %d", title, page.Version.Number+1)
	return nil
}

// DeletePage resolves the page by title and deletes it. Deleting an absent
// page reports NotFoundError, including on repeat deletes.
func (c *Client) DeletePage(title, spaceKey string) error {
	page, err := c.findPage(title, spaceKey)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("DELETE", c.baseURL+"/rest/api/content/"+page.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &NotFoundError{Resource: "page", Name: title}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.classifyWriteStatus(resp, "page", title)
	}

	c.logger.Debug("Deleted page '%s' (id %s)", title, page.ID)
	return nil
}

// findPage looks a page up by title within a space, with version and body
// expanded so callers get everything a subsequent write needs.
func (c *Client) findPage(title, spaceKey string) (*Page, error) {
	params := url.Values{}
	params.Add("title", title)
	params.Add("spaceKey", spaceKey)
	params.Add("expand", "version,body.storage")

	req, err := http.NewRequest("GET", c.baseURL+"/rest/api/content?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.send(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "find page")
	}

	var result struct {
		Results []Page `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	switch len(result.Results) {
	case 0:
		return nil, &NotFoundError{Resource: "page", Name: title}
	case 1:
		return &result.Results[0], nil
	default:
		return nil, &AmbiguousResultError{Resource: "page", Name: title, Matches: len(result.Results)}
	}
}

// send attaches credentials and executes the request. Network failures are
// wrapped as TransportError; status handling stays with the caller.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	req.SetBasicAuth(c.username, c.apiToken)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	return resp, nil
}

// classifyWriteStatus maps a failed create/update/delete response to the
// error taxonomy. The server signals a duplicate title on create with a
// 400 and a message rather than a 409, so both map to ConflictError.
func (c *Client) classifyWriteStatus(resp *http.Response, resource, name string) error {
	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusConflict:
		return &ConflictError{Resource: resource, Name: name, Reason: strings.TrimSpace(string(body))}
	case resp.StatusCode == http.StatusBadRequest && strings.Contains(string(body), "already exists"):
		return &ConflictError{Resource: resource, Name: name, Reason: strings.TrimSpace(string(body))}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Resource: resource, Name: name}
	default:
		return &TransportError{
			Op:         resp.Request.Method + " " + resp.Request.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
}

func statusError(resp *http.Response, op string) error {
	body, _ := io.ReadAll(resp.Body)
	return &TransportError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
}
