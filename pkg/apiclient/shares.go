package apiclient

import (
	"net/url"
	"time"
)

// Grant represents a per-account share grant as returned by the API.
type Grant struct {
	ID         string     `json:"id"`
	FileID     string     `json:"file_id"`
	AccountID  string     `json:"account_id"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ShareListing contains every grant and link on a file.
type ShareListing struct {
	Grants []Grant `json:"grants"`
	Links  []Link  `json:"links"`
}

// ShareFile grants a user access to a file. Re-granting to the same user
// replaces the permission and expiry. Permission is "view" or "download".
// A nil expiresAt means the grant never expires.
func (c *Client) ShareFile(fileID, username, permission string, expiresAt *time.Time) (*Grant, error) {
	req := struct {
		Permission string     `json:"permission"`
		ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	}{
		Permission: permission,
		ExpiresAt:  expiresAt,
	}

	path := resourcePath("/api/v1/files/%s/shares/%s", url.PathEscape(fileID), url.PathEscape(username))
	return updateResource[Grant](c, path, req)
}

// UnshareFile revokes a user's grant on a file.
func (c *Client) UnshareFile(fileID, username string) error {
	path := resourcePath("/api/v1/files/%s/shares/%s", url.PathEscape(fileID), url.PathEscape(username))
	return deleteResource(c, path)
}

// ListShares returns every grant and link on a file. Owner only.
func (c *Client) ListShares(fileID string) (*ShareListing, error) {
	return getResource[ShareListing](c, resourcePath("/api/v1/files/%s/shares", url.PathEscape(fileID)))
}
