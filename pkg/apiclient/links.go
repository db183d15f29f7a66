package apiclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Link represents a bearer share link as returned by the API.
// Token is only populated for the link's owner.
type Link struct {
	ID         string    `json:"id"`
	FileID     string    `json:"file_id"`
	Token      string    `json:"token"`
	URL        string    `json:"url,omitempty"`
	Permission string    `json:"permission"`
	OneTimeUse bool      `json:"one_time_use"`
	Consumed   bool      `json:"consumed"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// LinkPreview is the anonymous view of a link's target, without the owner.
type LinkPreview struct {
	FileName    string    `json:"file_name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Permission  string    `json:"permission"`
	OneTimeUse  bool      `json:"one_time_use"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// CreateLink mints a bearer share link for a file. Permission is "view" or
// "download". A nil expiresAt uses the server's default link lifetime.
func (c *Client) CreateLink(fileID, permission string, expiresAt *time.Time, oneTimeUse bool) (*Link, error) {
	req := struct {
		Permission string     `json:"permission"`
		ExpiresAt  *time.Time `json:"expires_at,omitempty"`
		OneTimeUse bool       `json:"one_time_use"`
	}{
		Permission: permission,
		ExpiresAt:  expiresAt,
		OneTimeUse: oneTimeUse,
	}

	return createResource[Link](c, resourcePath("/api/v1/files/%s/links", url.PathEscape(fileID)), req)
}

// ListLinks returns every link on a file. Owner only.
func (c *Client) ListLinks(fileID string) ([]Link, error) {
	return listResources[Link](c, resourcePath("/api/v1/files/%s/links", url.PathEscape(fileID)))
}

// RevokeLink deletes a link by ID. Owner only.
func (c *Client) RevokeLink(fileID, linkID string) error {
	path := resourcePath("/api/v1/files/%s/links/%s", url.PathEscape(fileID), url.PathEscape(linkID))
	return deleteResource(c, path)
}

// PeekLink returns what a link points at without consuming it.
// No authentication required.
func (c *Client) PeekLink(token string) (*LinkPreview, error) {
	return getResource[LinkPreview](c, resourcePath("/api/v1/links/%s", url.PathEscape(token)))
}

// RedeemLink streams the linked file's content to the given writer.
// Action is "view" or "download"; one-time links are consumed on success.
// No authentication required.
func (c *Client) RedeemLink(token, action string, w io.Writer) error {
	path := resourcePath("/api/v1/links/%s/content?action=%s", url.PathEscape(token), url.QueryEscape(action))
	body, _, err := c.doRaw(http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("failed to write link content: %w", err)
	}
	return nil
}
