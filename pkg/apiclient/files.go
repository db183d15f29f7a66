package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"time"
)

// File represents a file as returned by the API.
type File struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileListing separates files the account owns from files shared with it.
type FileListing struct {
	Owned  []File `json:"owned"`
	Shared []File `json:"shared"`
}

// UploadFile uploads file content under the given name.
// If name is empty, the base name of the path used by the caller should be
// passed explicitly; the server rejects unnamed uploads.
func (c *Client) UploadFile(name string, content io.Reader) (*File, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", filepath.Base(name))
		if err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			_ = pw.CloseWithError(err)
			return
		}
		_ = pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/v1/files", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, respBody)
	}

	var file File
	if err := json.Unmarshal(respBody, &file); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &file, nil
}

// ListFiles returns the files the account owns and the files shared with it.
func (c *Client) ListFiles() (*FileListing, error) {
	return getResource[FileListing](c, "/api/v1/files")
}

// GetFile returns a file's metadata.
func (c *Client) GetFile(id string) (*File, error) {
	return getResource[File](c, resourcePath("/api/v1/files/%s", url.PathEscape(id)))
}

// DownloadFile streams a file's content to the given writer.
func (c *Client) DownloadFile(id string, w io.Writer) error {
	path := resourcePath("/api/v1/files/%s/content?action=download", url.PathEscape(id))
	body, _, err := c.doRaw(http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("failed to write file content: %w", err)
	}
	return nil
}

// DeleteFile deletes a file, its content, and every grant and link on it.
func (c *Client) DeleteFile(id string) error {
	return deleteResource(c, resourcePath("/api/v1/files/%s", url.PathEscape(id)))
}
