// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads access keys from a directory of plain-text files.
// Each file holds one secret: the filename is the key name, the trimmed
// file contents are the value.
//
// Supported key files: biogrid-access-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads every regular file in dir into a key → value map. A missing
// directory is not an error: services fall back to their built-in defaults.
// Dotfiles and subdirectories are ignored; an unreadable file produces a
// warning on stderr and is skipped.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	keys := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			keys[name] = value
		}
	}

	return keys, nil
}

// Lookup resolves a secret by precedence: an explicit value wins, then the
// loaded key file, then the environment variable. Returns "" when none is
// set.
func Lookup(loaded map[string]string, name, envVar, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v, ok := loaded[name]; ok {
		return v
	}
	return os.Getenv(envVar)
}
