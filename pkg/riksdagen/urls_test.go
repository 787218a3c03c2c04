package riksdagen

import (
	"errors"
	"testing"
)

func TestBuildURLList(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		ids            []string
		format         string
		expectedFormat string
		expectedURLs   []string
	}{
		{
			name:           "json format",
			ids:            []string{"H8C1"},
			format:         "json",
			expectedFormat: "json",
			expectedURLs:   []string{"https://data.riksdagen.se/dokument/H8C1.json"},
		},
		{
			name:           "html format uppercase input",
			ids:            []string{"H8C1", "H8C2"},
			format:         "HTML",
			expectedFormat: "html",
			expectedURLs: []string{
				"https://data.riksdagen.se/dokument/H8C1.html",
				"https://data.riksdagen.se/dokument/H8C2.html",
			},
		},
		{
			name:           "text format mixed case",
			ids:            []string{"GZ02K1"},
			format:         "Text",
			expectedFormat: "text",
			expectedURLs:   []string{"https://data.riksdagen.se/dokument/GZ02K1.text"},
		},
		{
			name:           "empty id list",
			ids:            []string{},
			format:         "json",
			expectedFormat: "json",
			expectedURLs:   []string{},
		},
		{
			name:           "duplicate ids are kept",
			ids:            []string{"H8C1", "H8C1"},
			format:         "json",
			expectedFormat: "json",
			expectedURLs: []string{
				"https://data.riksdagen.se/dokument/H8C1.json",
				"https://data.riksdagen.se/dokument/H8C1.json",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			list, err := BuildURLList(tc.ids, tc.format)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if list.Format != tc.expectedFormat {
				t.Errorf("Expected format %q, got %q", tc.expectedFormat, list.Format)
			}
			if list.Count != len(tc.expectedURLs) {
				t.Errorf("Expected count %d, got %d", len(tc.expectedURLs), list.Count)
			}
			if len(list.URLs) != len(tc.expectedURLs) {
				t.Fatalf("Expected %d URLs, got %d", len(tc.expectedURLs), len(list.URLs))
			}
			for i, expected := range tc.expectedURLs {
				if list.URLs[i].URL != expected {
					t.Errorf("URL %d: expected %q, got %q", i, expected, list.URLs[i].URL)
				}
				if list.URLs[i].ID != tc.ids[i] {
					t.Errorf("URL %d: expected ID %q, got %q", i, tc.ids[i], list.URLs[i].ID)
				}
			}
		})
	}
}

func TestBuildURLListInvalidFormat(t *testing.T) {
	t.Parallel()

	invalidFormats := []string{"pdf", "xml", "docx", "jsonp", ""}

	for _, format := range invalidFormats {
		t.Run("format="+format, func(t *testing.T) {
			t.Parallel()
			list, err := BuildURLList([]string{"X"}, format)
			if err == nil {
				t.Fatalf("Expected an error for format %q", format)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Expected ErrInvalidFormat, got: %v", err)
			}
			if list != nil {
				t.Error("No URL list should be produced for an invalid format")
			}
		})
	}
}
