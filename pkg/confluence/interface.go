package confluence

import "io"

// API defines the content-service operations the client exposes. Commands
// depend on this interface so tests can substitute MockAPI.
type API interface {
	ResolveSpaceKey(spaceName string) (string, error)
	ResolvePageID(title, spaceKey string) (string, error)
	GetPageContents(title, spaceKey string) (string, error)
	AddPage(title, spaceKey, body string) (string, error)
	AddChildPage(title, spaceKey, parentTitle, body string) (string, error)
	UpdatePage(title, spaceKey, body string) error
	DeletePage(title, spaceKey string) error
	UploadAttachment(filename string, content io.Reader, title, spaceKey, comment string) error
	UpdateAttachment(filename string, content io.Reader, title, spaceKey, comment string) error
	DeleteAttachment(filename, title, spaceKey string) error
	ListSpaces() ([]Space, error)
	ListAttachments(title, spaceKey string) ([]Attachment, error)
}

// Ensure Client implements the interface
var _ API = (*Client)(nil)
