package lib

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ValidatePath checks that the path exists and is a file.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("file path must not be empty")
	}
	st, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return err
	}
	if st.IsDir() {
		return fmt.Errorf("path is a directory, need a file: %s", path)
	}
	return nil
}

// KnownExtensions lists the extensions the client recognises without
// sniffing, sorted.
func KnownExtensions() []string {
	exts := lo.Keys(extTypes)
	sort.Strings(exts)
	return exts
}

// KnownExtensionsStr is the listing used in usage strings and pickers.
func KnownExtensionsStr() string {
	return strings.Join(KnownExtensions(), ", ")
}

// IsKnownExtension reports whether ext (with leading dot) has a table entry.
func IsKnownExtension(ext string) bool {
	return lo.Contains(lo.Keys(extTypes), strings.ToLower(ext))
}
