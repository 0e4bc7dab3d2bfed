// Package fsutil holds small filesystem helpers shared by the registry and CLI.
package fsutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// AtomicWrite writes data to path via a temporary sibling file and a rename,
// so readers never observe a partially written file.
func AtomicWrite(path string, data []byte, perm os.FileMode) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := path + ".tmp." + hex.EncodeToString(randBytes)

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
