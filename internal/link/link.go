package link

import (
	"net/url"
	"strings"
)

// DefaultEndpoint is the Drive endpoint serving direct downloads.
const DefaultEndpoint = "https://drive.google.com/uc"

// URL markers recognized by ExtractID
const (
	queryIDMarker  = "id="
	pathIDMarker   = "/d/"
	fragmentMarker = "#"
)

// ExtractID returns the file identifier embedded in a sharing link.
//
// Links carrying an "id=" query parameter win over "/d/<id>/" path links.
// A trailing "#fragment" is never part of the identifier. The second return
// value is false when no non-empty identifier is found.
func ExtractID(rawURL string) (string, bool) {
	var id string
	switch {
	case strings.Contains(rawURL, queryIDMarker):
		id = after(rawURL, queryIDMarker, "&")
	case strings.Contains(rawURL, pathIDMarker):
		id = after(rawURL, pathIDMarker, "/")
	default:
		return "", false
	}
	if i := strings.Index(id, fragmentMarker); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", false
	}
	return id, true
}

// after returns the text following the last marker up to the next stop.
func after(s, marker, stop string) string {
	s = s[strings.LastIndex(s, marker)+len(marker):]
	if i := strings.Index(s, stop); i >= 0 {
		s = s[:i]
	}
	return s
}

// DownloadURL builds the direct download URL for id on the given endpoint.
// An empty endpoint falls back to DefaultEndpoint.
func DownloadURL(endpoint, id string) string {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	q := url.Values{}
	q.Set("export", "download")
	q.Set("id", id)
	return endpoint + "?" + q.Encode()
}

// SplitLines splits pasted text into one entry per line. Blank lines are
// kept so callers see exactly what the user typed.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
