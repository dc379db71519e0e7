package format

import "strings"

const base64Marker = ";base64,"

// IsDataURL reports whether value is a self-contained base64 data URL
// (data:<mediatype>;base64,<payload>) rather than plain text or a link.
func IsDataURL(value string) bool {
	value = strings.TrimSpace(value)
	if len(value) < len("data:") || !strings.EqualFold(value[:len("data:")], "data:") {
		return false
	}
	idx := strings.Index(value, base64Marker)
	if idx < 0 {
		return false
	}
	mediaType := value[len("data:"):idx]
	if strings.ContainsAny(mediaType, ", ") {
		return false
	}
	return len(value) > idx+len(base64Marker)
}
