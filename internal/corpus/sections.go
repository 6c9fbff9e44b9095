package corpus

import (
	"versemood/internal/labels"
	"versemood/internal/textutil"
)

// Section is one of the three fixed canon partitions used for stratified
// recommendation sampling.
type Section int

const (
	SectionGospels Section = iota
	SectionNTRest
	SectionOldTestament
)

// Sections lists the partitions in canonical order.
var Sections = []Section{SectionGospels, SectionNTRest, SectionOldTestament}

func (s Section) String() string {
	switch s {
	case SectionGospels:
		return "gospels"
	case SectionNTRest:
		return "nt_rest"
	case SectionOldTestament:
		return "old_testament"
	default:
		return "unknown"
	}
}

// Membership is by normalized book identifier against the Gospels and
// rest-of-NT lists; anything else is Old Testament by default, so no explicit
// OT list exists to drift out of sync.
var gospelBooks = map[labels.Language][]string{
	labels.LanguageEnglish: {"matthew", "mark", "luke", "john"},
	labels.LanguageSpanish: {"mateo", "marcos", "lucas", "juan"},
}

var ntRestBooks = map[labels.Language][]string{
	labels.LanguageEnglish: {
		"acts", "romans", "1_corinthians", "2_corinthians", "galatians", "ephesians",
		"philippians", "colossians", "1_thessalonians", "2_thessalonians", "1_timothy",
		"2_timothy", "titus", "philemon", "hebrews", "james", "1_peter", "2_peter",
		"1_john", "2_john", "3_john", "jude", "revelation",
	},
	labels.LanguageSpanish: {
		"hechos", "romanos", "1_corintios", "2_corintios", "galatas", "efesios",
		"filipenses", "colosenses", "1_tesalonicenses", "2_tesalonicenses", "1_timoteo",
		"2_timoteo", "tito", "filemon", "hebreos", "santiago", "1_pedro", "2_pedro",
		"1_juan", "2_juan", "3_juan", "judas", "apocalipsis",
	},
}

var sectionIndex = func() map[labels.Language]map[string]Section {
	idx := make(map[labels.Language]map[string]Section, 2)
	for lang, gospels := range gospelBooks {
		m := make(map[string]Section, len(gospels)+len(ntRestBooks[lang]))
		for _, book := range gospels {
			m[book] = SectionGospels
		}
		for _, book := range ntRestBooks[lang] {
			m[book] = SectionNTRest
		}
		idx[lang] = m
	}
	return idx
}()

// SectionFor partitions a book into its canon section for the given language
// edition.
func SectionFor(book string, lang labels.Language) Section {
	if m, ok := sectionIndex[lang]; ok {
		if section, ok := m[textutil.NormalizeBookID(book)]; ok {
			return section
		}
	}
	return SectionOldTestament
}
