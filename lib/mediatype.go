package lib

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Extension table for the formats people actually throw at the robot.
// The stdlib builtin table has no video entries at all, so this comes first.
var extTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
}

// DetectMediaType resolves the declared media type of a file: the own
// extension table, then the platform mime registry, then content sniffing
// on the first 512 bytes. Returns "" when nothing matched.
func DetectMediaType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		// TypeByExtension may append parameters (charset etc.)
		if i := strings.Index(t, ";"); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	return sniffMediaType(path)
}

func sniffMediaType(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	if n == 0 {
		return ""
	}
	t := http.DetectContentType(buf[:n])
	if i := strings.Index(t, ";"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}

// IsImageType reports whether the media type belongs to the image path.
func IsImageType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "image/")
}

// IsVideoType reports whether the media type belongs to the video path.
func IsVideoType(mediaType string) bool {
	return strings.HasPrefix(mediaType, "video/")
}
