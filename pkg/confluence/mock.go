package confluence

import (
	"io"
	"strconv"
)

// MockAPI is an in-memory implementation of API for tests. It reproduces
// the client's failure semantics (not-found, ambiguity, conflicts) without
// touching HTTP.
type MockAPI struct {
	Spaces      []Space
	Pages       map[string]*Page             // spaceKey:title -> page
	Attachments map[string]map[string][]byte // spaceKey:title -> filename -> content
	Comments    map[string]map[string]string // spaceKey:title -> filename -> comment

	AddCalls    []string // titles created (for assertions)
	UpdateCalls []string // titles updated
	DeleteCalls []string // titles deleted

	nextID int
}

func NewMockAPI() *MockAPI {
	return &MockAPI{
		Pages:       make(map[string]*Page),
		Attachments: make(map[string]map[string][]byte),
		Comments:    make(map[string]map[string]string),
	}
}

func (m *MockAPI) key(spaceKey, title string) string { return spaceKey + ":" + title }

func (m *MockAPI) ResolveSpaceKey(spaceName string) (string, error) {
	var matches []Space
	for _, space := range m.Spaces {
		if space.Name == spaceName {
			matches = append(matches, space)
		}
	}
	switch len(matches) {
	case 0:
		return "", &NotFoundError{Resource: "space", Name: spaceName}
	case 1:
		return matches[0].Key, nil
	default:
		return "", &AmbiguousResultError{Resource: "space", Name: spaceName, Matches: len(matches)}
	}
}

func (m *MockAPI) ResolvePageID(title, spaceKey string) (string, error) {
	page, ok := m.Pages[m.key(spaceKey, title)]
	if !ok {
		return "", &NotFoundError{Resource: "page", Name: title}
	}
	return page.ID, nil
}

func (m *MockAPI) GetPageContents(title, spaceKey string) (string, error) {
	page, ok := m.Pages[m.key(spaceKey, title)]
	if !ok {
		return "", &NotFoundError{Resource: "page", Name: title}
	}
	return page.Body.Storage.Value, nil
}

func (m *MockAPI) AddPage(title, spaceKey, body string) (string, error) {
	if _, exists := m.Pages[m.key(spaceKey, title)]; exists {
		return "", &ConflictError{Resource: "page", Name: title, Reason: "page already exists"}
	}
	m.nextID++
	page := &Page{ID: strconv.Itoa(m.nextID), Title: title}
	page.Space.Key = spaceKey
	page.Body.Storage.Value = body
	page.Version.Number = 1
	m.Pages[m.key(spaceKey, title)] = page
	m.AddCalls = append(m.AddCalls, title)
	return page.ID, nil
}

func (m *MockAPI) AddChildPage(title, spaceKey, parentTitle, body string) (string, error) {
	if _, ok := m.Pages[m.key(spaceKey, parentTitle)]; !ok {
		return "", &NotFoundError{Resource: "page", Name: parentTitle}
	}
	return m.AddPage(title, spaceKey, body)
}

func (m *MockAPI) UpdatePage(title, spaceKey, body string) error {
	page, ok := m.Pages[m.key(spaceKey, title)]
	if !ok {
		return &NotFoundError{Resource: "page", Name: title}
	}
	page.Body.Storage.Value = body
	page.Version.Number++
	m.UpdateCalls = append(m.UpdateCalls, title)
	return nil
}

func (m *MockAPI) DeletePage(title, spaceKey string) error {
	if _, ok := m.Pages[m.key(spaceKey, title)]; !ok {
		return &NotFoundError{Resource: "page", Name: title}
	}
	delete(m.Pages, m.key(spaceKey, title))
	m.DeleteCalls = append(m.DeleteCalls, title)
	return nil
}

func (m *MockAPI) UploadAttachment(filename string, content io.Reader, title, spaceKey, comment string) error {
	if _, ok := m.Pages[m.key(spaceKey, title)]; !ok {
		return &NotFoundError{Resource: "page", Name: title}
	}
	files := m.Attachments[m.key(spaceKey, title)]
	if _, exists := files[filename]; exists {
		return &ConflictError{Resource: "attachment", Name: filename, Reason: "attachment already exists on page"}
	}
	return m.storeAttachment(filename, content, title, spaceKey, comment)
}

func (m *MockAPI) UpdateAttachment(filename string, content io.Reader, title, spaceKey, comment string) error {
	if _, ok := m.Pages[m.key(spaceKey, title)]; !ok {
		return &NotFoundError{Resource: "page", Name: title}
	}
	if _, exists := m.Attachments[m.key(spaceKey, title)][filename]; !exists {
		return &NotFoundError{Resource: "attachment", Name: filename}
	}
	return m.storeAttachment(filename, content, title, spaceKey, comment)
}

func (m *MockAPI) DeleteAttachment(filename, title, spaceKey string) error {
	if _, ok := m.Pages[m.key(spaceKey, title)]; !ok {
		return &NotFoundError{Resource: "page", Name: title}
	}
	files := m.Attachments[m.key(spaceKey, title)]
	if _, exists := files[filename]; !exists {
		return &NotFoundError{Resource: "attachment", Name: filename}
	}
	delete(files, filename)
	return nil
}

func (m *MockAPI) ListSpaces() ([]Space, error) {
	return m.Spaces, nil
}

func (m *MockAPI) ListAttachments(title, spaceKey string) ([]Attachment, error) {
	if _, ok := m.Pages[m.key(spaceKey, title)]; !ok {
		return nil, &NotFoundError{Resource: "page", Name: title}
	}
	var attachments []Attachment
	for filename := range m.Attachments[m.key(spaceKey, title)] {
		att := Attachment{ID: "att-" + filename, Title: filename}
		att.Metadata.Comment = m.Comments[m.key(spaceKey, title)][filename]
		attachments = append(attachments, att)
	}
	return attachments, nil
}

func (m *MockAPI) storeAttachment(filename string, content io.Reader, title, spaceKey, comment string) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	k := m.key(spaceKey, title)
	if m.Attachments[k] == nil {
		m.Attachments[k] = make(map[string][]byte)
		m.Comments[k] = make(map[string]string)
	}
	m.Attachments[k][filename] = data
	m.Comments[k][filename] = comment
	return nil
}

var _ API = (*MockAPI)(nil)
