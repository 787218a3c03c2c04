package riksdagen

// documentTypeCatalog maps the common Riksdagen document type codes to
// human-readable descriptions. These are the values accepted by the "doktyp"
// search filter.
var documentTypeCatalog = map[string]string{
	"prop": "Government Bill (Proposition)",
	"mot":  "Motion",
	"bet":  "Committee Report (Betänkande)",
	"prot": "Protocol",
	"skr":  "Government Communication (Skrivelse)",
	"sou":  "Official Government Report (Statens offentliga utredningar)",
	"ds":   "Ministry Publication (Departementsserien)",
	"fpm":  "Factual Memorandum (Faktapromemoria)",
	"utl":  "Statement (Utlåtande)",
	"dir":  "Committee Directive (Kommittédirektiv)",
	"rskr": "Parliamentary Communication (Riksdagsskrivelse)",
	"ip":   "Interpellation",
	"fr":   "Question (Fråga)",
	"EU":   "EU Document",
}

// DocumentTypes returns the fixed catalog of document type codes and their
// descriptions. The returned map is a copy; callers may modify it freely.
func DocumentTypes() map[string]string {
	types := make(map[string]string, len(documentTypeCatalog))
	for code, description := range documentTypeCatalog {
		types[code] = description
	}
	return types
}
