package constants

import "strings"

// ContentTypes maps supported inbound image extensions (lowercase, no dot) to
// the content type sent on the analyze request. Extensions outside this map
// are a hard, non-retryable failure.
var ContentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"tiff": "image/tiff",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ContentTypeForName returns the analyze content type for a file name, or
// ok=false when the extension is unsupported.
func ContentTypeForName(name string) (string, bool) {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return "", false
	}
	ct, ok := ContentTypes[NormalizeExt(name[dot:])]
	return ct, ok
}
