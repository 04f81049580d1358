package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes a file to disk in an atomic fashion by using an
// intermediate temporary file that is swapped in place using a rename
// operation.
func WriteFileAtomic(path string, data []byte, permissions os.FileMode) error {
	// Create a temporary file in the same directory as the target so that the
	// rename operation doesn't cross filesystem boundaries.
	temporary, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file: %w", err)
	}

	// Write data and close the file, removing the temporary file if either
	// operation fails.
	if _, err = temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(temporary.Name())
		return fmt.Errorf("unable to write data to temporary file: %w", err)
	} else if err = temporary.Close(); err != nil {
		os.Remove(temporary.Name())
		return fmt.Errorf("unable to close temporary file: %w", err)
	}

	// Set the file's permissions.
	if err = os.Chmod(temporary.Name(), permissions); err != nil {
		os.Remove(temporary.Name())
		return fmt.Errorf("unable to set file permissions: %w", err)
	}

	// Rename the file into place.
	if err = os.Rename(temporary.Name(), path); err != nil {
		os.Remove(temporary.Name())
		return fmt.Errorf("unable to rename file into place: %w", err)
	}

	// Success.
	return nil
}
