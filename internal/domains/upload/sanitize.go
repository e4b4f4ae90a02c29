package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	hyphenRuns  = regexp.MustCompile(`-+`)
)

// sanitizeFilename strips path components and anything outside
// [a-zA-Z0-9._-] so the original name is safe to store on disk.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "-")
	base = unsafeChars.ReplaceAllString(base, "")
	base = hyphenRuns.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		base = "upload"
	}
	return base
}

// storageKey prefixes the sanitized name with a millisecond timestamp
// so concurrent uploads of the same file never collide.
func storageKey(originalName string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), sanitizeFilename(originalName))
}
