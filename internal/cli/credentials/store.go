// Package credentials stores sgctl login state on disk. A context pairs a
// server URL with one account's token set; several contexts can coexist
// (work server, home server) with one marked current.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	// DefaultConfigDir is the directory name under XDG_CONFIG_HOME.
	DefaultConfigDir = "sgctl"
	// ConfigFileName is the credential file name.
	ConfigFileName = "config.json"
	// FilePermissions keeps stored tokens owner-readable only.
	FilePermissions = 0600
	// DirPermissions for the config directory.
	DirPermissions = 0700

	// DefaultContextName is used when logging in without naming a context.
	DefaultContextName = "default"
)

var (
	// ErrNoCurrentContext indicates no context is currently set.
	ErrNoCurrentContext = errors.New("no current context set")
	// ErrContextNotFound indicates the requested context doesn't exist.
	ErrContextNotFound = errors.New("context not found")
	// ErrNotLoggedIn indicates no valid credentials exist.
	ErrNotLoggedIn = errors.New("not logged in - run 'sgctl login' first")
)

// Context is one saved server connection.
type Context struct {
	ServerURL    string    `json:"server_url"`
	Username     string    `json:"username,omitempty"`
	AccessToken  string    `json:"access_token,omitempty"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}

// IsExpired reports whether the access token needs refreshing. A zero
// expiry counts as expired, and a 60 second skew window avoids sending a
// token that dies in flight.
func (c *Context) IsExpired() bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(60 * time.Second).After(c.ExpiresAt)
}

// HasRefreshToken reports whether a refresh token is available.
func (c *Context) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// Config is the on-disk shape of the credential file.
type Config struct {
	CurrentContext string              `json:"current_context"`
	Contexts       map[string]*Context `json:"contexts"`
}

// Store reads and writes the credential file.
type Store struct {
	configPath string
	config     *Config
}

// NewStore opens the credential store at the default XDG path.
func NewStore() (*Store, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewStoreAtPath(configPath)
}

// NewStoreAtPath opens a credential store backed by the given file. A
// missing file yields an empty store; the file appears on the first save.
func NewStoreAtPath(configPath string) (*Store, error) {
	store := &Store{configPath: configPath}

	switch err := store.load(); {
	case err == nil:
	case os.IsNotExist(err):
		store.config = &Config{Contexts: make(map[string]*Context)}
	default:
		return nil, err
	}

	return store, nil
}

func getConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, DefaultConfigDir, ConfigFileName), nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return err
	}

	s.config = &Config{}
	return json.Unmarshal(data, s.config)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), DirPermissions); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.configPath, data, FilePermissions)
}

// GetCurrentContext returns the context marked current.
func (s *Store) GetCurrentContext() (*Context, error) {
	if s.config.CurrentContext == "" {
		return nil, ErrNoCurrentContext
	}

	ctx, ok := s.config.Contexts[s.config.CurrentContext]
	if !ok {
		return nil, ErrContextNotFound
	}
	return ctx, nil
}

// GetCurrentContextName returns the name of the current context, or "".
func (s *Store) GetCurrentContextName() string {
	return s.config.CurrentContext
}

// GetContext returns a context by name.
func (s *Store) GetContext(name string) (*Context, error) {
	ctx, ok := s.config.Contexts[name]
	if !ok {
		return nil, ErrContextNotFound
	}
	return ctx, nil
}

// ListContexts returns all context names, sorted.
func (s *Store) ListContexts() []string {
	names := make([]string, 0, len(s.config.Contexts))
	for name := range s.config.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetContext creates or replaces a context and persists the change.
func (s *Store) SetContext(name string, ctx *Context) error {
	if s.config.Contexts == nil {
		s.config.Contexts = make(map[string]*Context)
	}
	s.config.Contexts[name] = ctx
	return s.save()
}

// UseContext marks an existing context as current.
func (s *Store) UseContext(name string) error {
	if _, ok := s.config.Contexts[name]; !ok {
		return ErrContextNotFound
	}
	s.config.CurrentContext = name
	return s.save()
}

// DeleteContext removes a context. Deleting the current context leaves no
// context selected.
func (s *Store) DeleteContext(name string) error {
	if _, ok := s.config.Contexts[name]; !ok {
		return ErrContextNotFound
	}

	delete(s.config.Contexts, name)
	if s.config.CurrentContext == name {
		s.config.CurrentContext = ""
	}
	return s.save()
}

// UpdateTokens replaces the current context's token set, typically after
// a refresh.
func (s *Store) UpdateTokens(accessToken, refreshToken string, expiresAt time.Time) error {
	ctx, err := s.GetCurrentContext()
	if err != nil {
		return err
	}

	ctx.AccessToken = accessToken
	ctx.RefreshToken = refreshToken
	ctx.ExpiresAt = expiresAt
	return s.save()
}

// ClearCurrentContext drops the current context's tokens but keeps the
// server URL and username, so the next login needs no --server flag.
func (s *Store) ClearCurrentContext() error {
	ctx, err := s.GetCurrentContext()
	if err != nil {
		return err
	}

	ctx.AccessToken = ""
	ctx.RefreshToken = ""
	ctx.ExpiresAt = time.Time{}
	return s.save()
}

// ConfigPath returns the backing file's path.
func (s *Store) ConfigPath() string {
	return s.configPath
}
