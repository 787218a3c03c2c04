package riksdagen

import (
	"encoding/json"
	"strconv"
	"strings"
)

// HitCount handles the "@traffar" field of the document list, which the API
// serializes as a string ("42"). Numbers are accepted too; anything that
// cannot be parsed degrades to 0 instead of failing the whole response.
type HitCount int

// UnmarshalJSON implements json.Unmarshaler for HitCount.
func (h *HitCount) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)

	if str == "null" || str == "" {
		*h = 0
		return nil
	}

	n, err := strconv.Atoi(str)
	if err != nil {
		*h = 0
		return nil
	}

	*h = HitCount(n)
	return nil
}

// MarshalJSON implements json.Marshaler for HitCount.
func (h HitCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(h))
}

// DocumentEntries handles the "dokument" field, which the API serializes as
// an array for multiple hits but as a bare object for a single hit. Null and
// unrecognized shapes decode to an empty list.
type DocumentEntries []RawDocument

// UnmarshalJSON implements json.Unmarshaler for DocumentEntries.
func (d *DocumentEntries) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))

	if trimmed == "null" || trimmed == "" {
		*d = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var entries []RawDocument
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*d = entries
		return nil
	}

	var single RawDocument
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*d = DocumentEntries{single}
	return nil
}

// RawDocument is one entry of the upstream document list. Every field is
// optional; missing fields decode to the empty string.
type RawDocument struct {
	ID         string `json:"id"`
	Titel      string `json:"titel"`
	Typ        string `json:"typ"`
	Doktyp     string `json:"doktyp"`
	Datum      string `json:"datum"`
	Publicerad string `json:"publicerad"`
	Rm         string `json:"rm"`
	Organ      string `json:"organ"`
	URLText    string `json:"dokument_url_text"`
	URLHTML    string `json:"dokument_url_html"`
	Status     string `json:"status"`
}

// DocumentList mirrors the /dokumentlista/ response envelope. The entire
// "dokumentlista" object and any of its fields may be absent.
type DocumentList struct {
	Dokumentlista struct {
		Traffar  HitCount        `json:"@traffar"`
		Dokument DocumentEntries `json:"dokument"`
	} `json:"dokumentlista"`
}

// Document is the normalized, stable shape returned to tool callers. Fields
// missing upstream are empty strings.
type Document struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Type              string `json:"type"`
	DocumentType      string `json:"document_type"`
	Date              string `json:"date"`
	Published         string `json:"published"`
	ParliamentaryYear string `json:"parliamentary_year"`
	Organization      string `json:"organization"`
	TextURL           string `json:"text_url"`
	HTMLURL           string `json:"html_url"`
	Status            string `json:"status"`
}

// SearchResponse is the result of a normalized search: the upstream total hit
// count plus the returned documents, in upstream order.
type SearchResponse struct {
	TotalHits int        `json:"total_hits"`
	Documents []Document `json:"documents"`
}

// Normalize maps one raw upstream entry to the stable Document shape.
func Normalize(raw RawDocument) Document {
	return Document{
		ID:                raw.ID,
		Title:             raw.Titel,
		Type:              raw.Typ,
		DocumentType:      raw.Doktyp,
		Date:              raw.Datum,
		Published:         raw.Publicerad,
		ParliamentaryYear: raw.Rm,
		Organization:      raw.Organ,
		TextURL:           raw.URLText,
		HTMLURL:           raw.URLHTML,
		Status:            raw.Status,
	}
}
