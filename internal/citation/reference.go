package citation

import "strings"

// Kind classifies a bibliographic record.
type Kind string

// Reference kinds.
const (
	KindBook       Kind = "book"
	KindJournal    Kind = "journal"
	KindThesis     Kind = "thesis"
	KindProceeding Kind = "proceeding"
	KindReport     Kind = "report"
	KindWebsite    Kind = "website"
)

// kindAliases maps accepted spellings to kinds. Keys are lower case.
var kindAliases = map[string]Kind{
	"book":        KindBook,
	"buku":        KindBook,
	"journal":     KindJournal,
	"jurnal":      KindJournal,
	"article":     KindJournal,
	"thesis":      KindThesis,
	"skripsi":     KindThesis,
	"tesis":       KindThesis,
	"disertasi":   KindThesis,
	"proceeding":  KindProceeding,
	"proceedings": KindProceeding,
	"prosiding":   KindProceeding,
	"report":      KindReport,
	"laporan":     KindReport,
	"website":     KindWebsite,
	"web":         KindWebsite,
}

// ParseKind maps a free-form type label to a Kind. Matching is case
// insensitive. Unknown labels map to KindJournal, the generic serial kind.
func ParseKind(s string) Kind {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KindJournal
}

// Reference is one bibliographic record.
type Reference struct {
	Kind      Kind   `json:"kind" yaml:"kind"`
	Author    string `json:"author" yaml:"author"`
	Year      string `json:"year" yaml:"year"`
	Title     string `json:"title" yaml:"title"`
	City      string `json:"city" yaml:"city"`
	Publisher string `json:"publisher" yaml:"publisher"`
}
