package riksdagen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned when a document format is not one of the
// recognized values.
var ErrInvalidFormat = errors.New("invalid format: supported formats are json, html, text")

// DocumentURL pairs a document ID with its synthesized URL.
type DocumentURL struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// URLList is a batch of synthesized document URLs.
type URLList struct {
	URLs   []DocumentURL `json:"urls"`
	Format string        `json:"format"`
	Count  int           `json:"count"`
}

// BuildURLList synthesizes one URL per document ID in the requested format.
// The format is lowercased and must be one of json, html or text; an
// unrecognized format fails before any URL is built. Output order matches
// input order and IDs are not deduplicated.
func BuildURLList(documentIDs []string, format string) (*URLList, error) {
	extension := strings.ToLower(format)

	switch extension {
	case "json", "html", "text":
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidFormat, format)
	}

	urls := make([]DocumentURL, 0, len(documentIDs))
	for _, id := range documentIDs {
		var docURL string
		if extension == "json" {
			// The API endpoint serves the JSON rendering.
			docURL = fmt.Sprintf("%s/dokument/%s.%s", DefaultBaseURL, id, extension)
		} else {
			// HTML and text renderings live under the same document path.
			docURL = fmt.Sprintf("%s/dokument/%s.%s", DefaultBaseURL, id, extension)
		}
		urls = append(urls, DocumentURL{ID: id, URL: docURL})
	}

	return &URLList{
		URLs:   urls,
		Format: extension,
		Count:  len(urls),
	}, nil
}
