package auth

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTPConfig holds configuration for TOTP enrollment and verification.
type TOTPConfig struct {
	// Issuer is the name shown in authenticator apps. Default: "ShareGuard"
	Issuer string

	// Skew is how many 30-second steps either side of now are accepted,
	// to tolerate clock drift between server and authenticator. Default: 1.
	Skew uint
}

// TOTPEngine generates TOTP secrets and verifies codes.
type TOTPEngine struct {
	issuer string
	skew   uint
}

// Enrollment is the result of starting a TOTP enrollment.
type Enrollment struct {
	// Secret is the base32-encoded shared secret.
	Secret string

	// URL is the otpauth:// provisioning URI for authenticator apps.
	URL string
}

// NewTOTPEngine creates a TOTP engine with the given configuration.
func NewTOTPEngine(config TOTPConfig) *TOTPEngine {
	if config.Issuer == "" {
		config.Issuer = "ShareGuard"
	}
	if config.Skew == 0 {
		config.Skew = 1
	}
	return &TOTPEngine{
		issuer: config.Issuer,
		skew:   config.Skew,
	}
}

// GenerateSecret creates a new TOTP secret for the given account name.
func (e *TOTPEngine) GenerateSecret(accountName string) (*Enrollment, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: accountName,
	})
	if err != nil {
		return nil, err
	}
	return &Enrollment{
		Secret: key.Secret(),
		URL:    key.URL(),
	}, nil
}

// Verify checks a 6-digit code against the secret, allowing the configured
// clock skew.
func (e *TOTPEngine) Verify(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now(), totp.ValidateOpts{
		Period:    30,
		Skew:      e.skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return err == nil && ok
}
