package download

import (
	"mime"
	"strings"
)

const (
	// IllegalFilenameChars are stripped from every output file name
	IllegalFilenameChars = `<>:"/\|?*`

	// FallbackExtension is appended to the identifier when the server sends no name
	FallbackExtension = ".file"

	filenameParam         = "filename="
	extendedFilenameParam = "filename*="
)

// SanitizeFilename removes characters that are illegal in file paths and
// keeps everything else in order.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(IllegalFilenameChars, r) {
			return -1
		}
		return r
	}, name)
}

// FilenameFromDisposition returns the percent-decoded file name carried by a
// Content-Disposition header, or "" if there is none. A filename* value is
// already decoded by the media type parser and is returned as is.
func FilenameFromDisposition(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	var name string
	if _, params, err := mime.ParseMediaType(header); err == nil {
		name = params["filename"]
		if name != "" && strings.Contains(strings.ToLower(header), extendedFilenameParam) {
			return name
		}
	}
	if name == "" {
		// malformed header: take whatever follows the last filename=
		if i := strings.LastIndex(header, filenameParam); i >= 0 {
			name = strings.Trim(strings.TrimSpace(header[i+len(filenameParam):]), `"`)
		}
	}

	return unescapePercent(name)
}

// unescapePercent decodes every valid %XX sequence in s and keeps invalid
// ones verbatim.
func unescapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// OutputFilename picks the name a download is saved under: the sanitized
// Content-Disposition name when usable, otherwise "<id>.file".
func OutputFilename(disposition, id string) string {
	name := SanitizeFilename(FilenameFromDisposition(disposition))
	switch strings.TrimSpace(name) {
	case "", ".", "..":
		return SanitizeFilename(id) + FallbackExtension
	}
	return name
}
