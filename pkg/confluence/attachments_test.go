package confluence

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func attachmentResults(attachments ...Attachment) interface{} {
	return struct {
		Results []Attachment `json:"results"`
	}{Results: attachments}
}

func testAttachment(id, title string, version int) Attachment {
	var a Attachment
	a.ID = id
	a.Title = title
	a.Version.Number = version
	return a
}

func TestUploadAttachment(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK, attachmentResults())
	transport.addResponse("POST", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "demo.txt", 1)))

	err := client.UploadAttachment("demo.txt", strings.NewReader("hello"), "My Page", "DS", "First upload!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := transport.getLastRequest()
	if req.Header.Get("X-Atlassian-Token") != "nocheck" {
		t.Error("Expected X-Atlassian-Token: nocheck header on upload")
	}
	if !strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		t.Errorf("Expected multipart content type, got '%s'", req.Header.Get("Content-Type"))
	}

	payload, _ := io.ReadAll(req.Body)
	if !strings.Contains(string(payload), `filename="demo.txt"`) {
		t.Errorf("Expected form to carry the filename, got %s", payload)
	}
	if !strings.Contains(string(payload), "First upload!") {
		t.Errorf("Expected form to carry the comment, got %s", payload)
	}
}

func TestUploadAttachmentDuplicate(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "demo.txt", 2)))

	err := client.UploadAttachment("demo.txt", strings.NewReader("hello"), "My Page", "DS", "")
	if !IsConflict(err) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
	if writes := transport.requestsByMethod("POST"); len(writes) != 0 {
		t.Errorf("Expected no upload request for duplicate filename, got %d", len(writes))
	}
}

func TestUpdateAttachment(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "demo.txt", 2)))
	transport.addResponse("POST", "/wiki/rest/api/content/123/child/attachment/att1/data", http.StatusOK,
		testAttachment("att1", "demo.txt", 3))

	err := client.UpdateAttachment("demo.txt", strings.NewReader("hello again"), "My Page", "DS", "Second upload!")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	req := transport.getLastRequest()
	if req.URL.Path != "/wiki/rest/api/content/123/child/attachment/att1/data" {
		t.Errorf("Expected POST against the data endpoint, got %s", req.URL.Path)
	}
}

func TestUpdateAttachmentNotFound(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK, attachmentResults())

	err := client.UpdateAttachment("demo.txt", strings.NewReader("hello"), "My Page", "DS", "")
	if !IsNotFound(err) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if writes := transport.requestsByMethod("POST"); len(writes) != 0 {
		t.Errorf("Expected no upload request for missing attachment, got %d", len(writes))
	}
}

func TestDeleteAttachment(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "demo.txt", 1)))
	transport.addResponse("DELETE", "/wiki/rest/api/content/att1", http.StatusNoContent, nil)

	if err := client.DeleteAttachment("demo.txt", "My Page", "DS"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestDeleteAttachmentTwiceReportsNotFound(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	// First resolution sees the attachment, the second (after the delete)
	// sees an empty collection.
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "demo.txt", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK, attachmentResults())
	transport.addResponse("DELETE", "/wiki/rest/api/content/att1", http.StatusNoContent, nil)

	if err := client.DeleteAttachment("demo.txt", "My Page", "DS"); err != nil {
		t.Fatalf("Expected first delete to succeed, got %v", err)
	}

	err := client.DeleteAttachment("demo.txt", "My Page", "DS")
	if !IsNotFound(err) {
		t.Fatalf("Expected NotFoundError on second delete, got %v", err)
	}
}

func TestListAttachments(t *testing.T) {
	client, transport := createTestClient()
	transport.addResponse("GET", "/wiki/rest/api/content", http.StatusOK, pageResults(testPage("123", "My Page", 1)))
	transport.addResponse("GET", "/wiki/rest/api/content/123/child/attachment", http.StatusOK,
		attachmentResults(testAttachment("att1", "a.txt", 1), testAttachment("att2", "b.txt", 4)))

	attachments, err := client.ListAttachments("My Page", "DS")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(attachments) != 2 {
		t.Fatalf("Expected 2 attachments, got %d", len(attachments))
	}
	if attachments[1].Version.Number != 4 {
		t.Errorf("Expected attachment version 4, got %d", attachments[1].Version.Number)
	}
}
