package karabiner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultAssetsDir returns the complex modifications directory of the
// current user.
func DefaultAssetsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AssetsSubdir), nil
}

// Install copies the document at src into assetsDir, creating the
// directory if needed, and returns the destination path. The file must
// decode and satisfy the schema; Karabiner-Elements silently ignores
// files it cannot parse.
func Install(src, assetsDir string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}
	if err := ValidateJSON(data); err != nil {
		return "", fmt.Errorf("refusing to install %s: %w", src, err)
	}

	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return "", fmt.Errorf("creating assets directory: %w", err)
	}

	dst := filepath.Join(assetsDir, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		return "", fmt.Errorf("copying %s: %w", src, err)
	}
	return dst, nil
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
