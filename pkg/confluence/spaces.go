package confluence

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Space describes a page container on the server.
type Space struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
}

const spacePageLimit = 100

// ListSpaces returns every space visible to the authenticated user, walking
// the API's pagination.
func (c *Client) ListSpaces() ([]Space, error) {
	var spaces []Space
	start := 0

	for {
		params := url.Values{}
		params.Add("limit", strconv.Itoa(spacePageLimit))
		params.Add("start", strconv.Itoa(start))

		req, err := http.NewRequest("GET", c.baseURL+"/rest/api/space?"+params.Encode(), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.send(req)
		if err != nil {
			return nil, err
		}

		var result struct {
			Results []Space `json:"results"`
			Size    int     `json:"size"`
		}
		if resp.StatusCode != http.StatusOK {
			err := statusError(resp, "list spaces")
			resp.Body.Close()
			return nil, err
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		resp.Body.Close()

		spaces = append(spaces, result.Results...)
		if len(result.Results) < spacePageLimit {
			return spaces, nil
		}
		start += spacePageLimit
	}
}

// ResolveSpaceKey looks up a space by its display name and returns its key.
// The match is exact: no space fails with NotFoundError, and more than one
// space with the same display name fails with AmbiguousResultError rather
// than silently picking one.
func (c *Client) ResolveSpaceKey(spaceName string) (string, error) {
	spaces, err := c.ListSpaces()
	if err != nil {
		return "", err
	}

	var matches []Space
	for _, space := range spaces {
		if space.Name == spaceName {
			matches = append(matches, space)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{Resource: "space", Name: spaceName}
	case 1:
		c.logger.Debug("Resolved space '%s' to key %s", spaceName, matches[0].Key)
		return matches[0].Key, nil
	default:
		return "", &AmbiguousResultError{Resource: "space", Name: spaceName, Matches: len(matches)}
	}
}
