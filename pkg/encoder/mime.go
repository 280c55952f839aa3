package encoder

import (
	"mime"
	"path/filepath"
	"strings"
)

// MIMEOctetStream is the fallback content type for unrecognized files.
const MIMEOctetStream = "application/octet-stream"

// extensionTypes maps common media file extensions to MIME types. Checked
// before the platform MIME database so uploads encode identically across
// systems.
var extensionTypes = map[string]string{
	// Images
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".heic": "image/heic",
	// Video
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	// Audio
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".m4a": "audio/mp4",
	".ogg": "audio/ogg",
	// Data
	".json": "application/json",
	".txt":  "text/plain",
	".pdf":  "application/pdf",
}

// ContentTypeForFile guesses a MIME type from the file name's extension.
// Returns "application/octet-stream" when the extension is missing or
// unknown.
func ContentTypeForFile(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return MIMEOctetStream
	}
	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return MIMEOctetStream
}
