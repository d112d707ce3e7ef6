// ABOUTME: Persistent storage for the bearer token that proves a session
// ABOUTME: File-backed under the XDG config dir; absent file means logged out

package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store persists at most one bearer credential. Absence of a credential is
// the canonical logged-out representation.
type Store interface {
	// Get returns the stored credential, or ok=false when none is stored.
	Get() (token string, ok bool)
	// Set replaces the stored credential.
	Set(token string) error
	// Clear removes the stored credential. Clearing an empty store is a no-op.
	Clear() error
}

// FileStore keeps the credential in a single file, mode 0600.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a file-backed credential store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   path,
		logger: slog.Default().With("component", "credentials"),
	}
}

// DefaultPath returns the token file location.
// Priority: XDG_CONFIG_HOME/prestasi/token > ~/.config/prestasi/token
func DefaultPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "token" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "prestasi", "token")
}

// Get reads the stored credential. Any read failure is treated as absence;
// the token shape is not validated here.
func (s *FileStore) Get() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

// Set writes the credential, creating parent directories as needed.
func (s *FileStore) Set(token string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating credential directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("writing credential file: %w", err)
	}
	s.logger.Debug("credential stored", "path", s.path)
	return nil
}

// Clear removes the credential file. Removing a file that does not exist
// succeeds silently.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credential file: %w", err)
	}
	s.logger.Debug("credential cleared", "path", s.path)
	return nil
}
