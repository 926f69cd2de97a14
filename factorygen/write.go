package factorygen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okirillov/promptset"
)

// WriteFile generates the factory source and writes it to path, creating
// parent directories as needed. Existing content is overwritten: the file
// is a derived artifact and never hand-edited.
func WriteFile(c *promptset.Collection, pkgName, path string) error {
	src, err := Generate(c, pkgName)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("factorygen: create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, src, 0o600); err != nil {
		return fmt.Errorf("factorygen: write file: %w", err)
	}
	return nil
}
