package apiclient

// Enrollment is the result of starting MFA enrollment.
type Enrollment struct {
	// Secret is the base32-encoded shared secret, for manual entry.
	Secret string `json:"secret"`

	// URL is the otpauth:// provisioning URI for authenticator apps.
	URL string `json:"url"`
}

// EnableMFA starts TOTP enrollment for the authenticated account.
// Enrollment is pending until ConfirmMFA succeeds with a valid code.
func (c *Client) EnableMFA() (*Enrollment, error) {
	return createResource[Enrollment](c, "/api/v1/mfa/enable", nil)
}

// ConfirmMFA commits a pending enrollment with a code from the
// authenticator app.
func (c *Client) ConfirmMFA(code string) error {
	req := struct {
		Code string `json:"code"`
	}{Code: code}

	return c.post("/api/v1/mfa/confirm", req, nil)
}

// DisableMFA turns off MFA for the authenticated account.
func (c *Client) DisableMFA() error {
	return c.post("/api/v1/mfa/disable", nil, nil)
}
