// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName      = "go-pass-vault"
	sessionFileName = "session"
	sessionFileMode = 0o600
	sessionDirMode  = 0o700
)

// SessionStore keeps the bearer token between vaultctl invocations.
type SessionStore struct {
	path string
}

// NewSessionStore stores the token in dir/session.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionFileName)}
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/go-pass-vault, falling back to
// the platform user config directory.
func DefaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		var err error
		if base, err = os.UserConfigDir(); err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
	}
	return filepath.Join(base, appDirName), nil
}

func (s *SessionStore) Path() string {
	return s.path
}

// Load returns ErrNoSession when no token has been saved.
func (s *SessionStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

func (s *SessionStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), sessionFileMode); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
