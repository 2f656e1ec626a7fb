package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolve returns the images to process for the input path.  A directory
// yields every entry directly inside it whose name ends with suffix, in
// directory order, and folder is returned as true.  A file yields itself.
func Resolve(input, suffix string) (files []string, folder bool, err error) {

	info, err := os.Stat(input)

	if err != nil {
		return nil, false, fmt.Errorf("%w: %s: %w", ErrInputNotFound, input, err)
	}

	if !info.IsDir() {
		return []string{input}, false, nil
	}

	dir, err := os.Open(input)

	if err != nil {
		return nil, true, fmt.Errorf("%w: %s: %w", ErrInputNotFound, input, err)
	}

	defer dir.Close()

	// Readdirnames keeps the order entries are returned by the filesystem
	names, err := dir.Readdirnames(-1)

	if err != nil {
		return nil, true, fmt.Errorf("error reading directory %s: %w", input, err)
	}

	for _, name := range names {
		if strings.HasSuffix(name, suffix) {
			files = append(files, filepath.Join(input, name))
		}
	}

	return files, true, nil
}
