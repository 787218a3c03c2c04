// Package riksdagen provides types and a client for the Swedish Parliament's
// open data API (data.riksdagen.se), including search parameter handling,
// tolerant response parsing and document URL synthesis.
package riksdagen

// Default values applied to every search unless the caller overrides them.
const (
	DefaultSort      = "rel"  // sort by relevance
	DefaultSortOrder = "desc" // newest/most relevant first
	DefaultFormat    = "json" // utformat
)

// SearchParams holds the query parameters accepted by the /dokumentlista/
// endpoint. All fields are optional strings; empty fields are omitted from
// the outgoing query. FromDate is sent under the upstream key "from".
type SearchParams struct {
	Sok       string // free-text search term
	Doktyp    string // document type code, e.g. "prop", "mot"
	Rm        string // parliamentary session, e.g. "2021/22"
	FromDate  string // start date, YYYY-MM-DD
	Tom       string // end date, YYYY-MM-DD
	Ts        string // time span
	Bet       string // designation
	Tempbet   string // temporary designation
	Nr        string // number
	Org       string // organization (committee) code
	Iid       string // intressent (person) ID
	Webbtv    string // web TV flag
	Talare    string // speaker
	Exakt     string // exact match flag
	Planering string // planning flag
	Sort      string // sort key: rel, datum, beteckning, publikation
	SortOrder string // sort direction: desc, asc
	Rapport   string // report flag
	Utformat  string // output format: json, xml, ...
	A         string // additional upstream parameter
}

// queryFields maps struct fields to their canonical upstream query keys in a
// fixed order. FromDate is deliberately emitted as "from"; all other fields
// keep their own name.
var queryFields = []struct {
	key string
	get func(SearchParams) string
}{
	{"sok", func(p SearchParams) string { return p.Sok }},
	{"doktyp", func(p SearchParams) string { return p.Doktyp }},
	{"rm", func(p SearchParams) string { return p.Rm }},
	{"from", func(p SearchParams) string { return p.FromDate }},
	{"tom", func(p SearchParams) string { return p.Tom }},
	{"ts", func(p SearchParams) string { return p.Ts }},
	{"bet", func(p SearchParams) string { return p.Bet }},
	{"tempbet", func(p SearchParams) string { return p.Tempbet }},
	{"nr", func(p SearchParams) string { return p.Nr }},
	{"org", func(p SearchParams) string { return p.Org }},
	{"iid", func(p SearchParams) string { return p.Iid }},
	{"webbtv", func(p SearchParams) string { return p.Webbtv }},
	{"talare", func(p SearchParams) string { return p.Talare }},
	{"exakt", func(p SearchParams) string { return p.Exakt }},
	{"planering", func(p SearchParams) string { return p.Planering }},
	{"sort", func(p SearchParams) string { return p.Sort }},
	{"sortorder", func(p SearchParams) string { return p.SortOrder }},
	{"rapport", func(p SearchParams) string { return p.Rapport }},
	{"utformat", func(p SearchParams) string { return p.Utformat }},
	{"a", func(p SearchParams) string { return p.A }},
}

// NewSearchParams returns search parameters with the default sort key, sort
// direction and output format set.
func NewSearchParams() SearchParams {
	return SearchParams{
		Sort:      DefaultSort,
		SortOrder: DefaultSortOrder,
		Utformat:  DefaultFormat,
	}
}

// QueryParams converts the parameters to a map suitable for a URL query
// string. Only non-empty fields are included.
func (p SearchParams) QueryParams() map[string]string {
	params := make(map[string]string)
	for _, f := range queryFields {
		if v := f.get(p); v != "" {
			params[f.key] = v
		}
	}
	return params
}
