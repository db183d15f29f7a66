package apiclient

// UserRef is the public reference to an account, used when picking
// share targets.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ListUsers returns every enabled account's public reference.
func (c *Client) ListUsers() ([]UserRef, error) {
	return listResources[UserRef](c, "/api/v1/users")
}
