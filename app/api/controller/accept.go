package controller

import (
	"net/http"
	"strings"
)

// acceptsJSON reports whether the request explicitly accepts a JSON response.
// The Accept header is required: a request without one is treated the same as
// one naming an unsupported format. Media type parameters such as q-values
// are ignored.
func acceptsJSON(r *http.Request) bool {
	values := r.Header.Values("Accept")
	if len(values) == 0 {
		return false
	}
	for _, header := range values {
		for _, part := range strings.Split(header, ",") {
			mediaType := part
			if i := strings.Index(mediaType, ";"); i >= 0 {
				mediaType = mediaType[:i]
			}
			switch strings.ToLower(strings.TrimSpace(mediaType)) {
			case "application/json", "application/*", "*/*":
				return true
			}
		}
	}
	return false
}
