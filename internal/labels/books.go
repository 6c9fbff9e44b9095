package labels

import "versemood/internal/textutil"

type bookEntry struct {
	en        string // canonical English identifier
	es        string // canonical Spanish identifier
	esDisplay string // human-facing Spanish name with accents
}

// books pairs every book identifier across the two editions. Spelling differs
// lexically between languages, so correspondence is fixed here rather than
// derived by normalization.
var books = []bookEntry{
	{"genesis", "genesis", "Génesis"},
	{"exodus", "exodo", "Éxodo"},
	{"leviticus", "levitico", "Levítico"},
	{"numbers", "numeros", "Números"},
	{"deuteronomy", "deuteronomio", "Deuteronomio"},
	{"joshua", "josue", "Josué"},
	{"judges", "jueces", "Jueces"},
	{"ruth", "rut", "Rut"},
	{"1_samuel", "1_samuel", "1 Samuel"},
	{"2_samuel", "2_samuel", "2 Samuel"},
	{"1_kings", "1_reyes", "1 Reyes"},
	{"2_kings", "2_reyes", "2 Reyes"},
	{"1_chronicles", "1_cronicas", "1 Crónicas"},
	{"2_chronicles", "2_cronicas", "2 Crónicas"},
	{"ezra", "esdras", "Esdras"},
	{"nehemiah", "nehemias", "Nehemías"},
	{"esther", "ester", "Ester"},
	{"job", "job", "Job"},
	{"psalms", "salmos", "Salmos"},
	{"proverbs", "proverbios", "Proverbios"},
	{"ecclesiastes", "eclesiastes", "Eclesiastés"},
	{"song_of_solomon", "cantares", "Cantares"},
	{"isaiah", "isaias", "Isaías"},
	{"jeremiah", "jeremias", "Jeremías"},
	{"lamentations", "lamentaciones", "Lamentaciones"},
	{"ezekiel", "ezequiel", "Ezequiel"},
	{"daniel", "daniel", "Daniel"},
	{"hosea", "oseas", "Oseas"},
	{"joel", "joel", "Joel"},
	{"amos", "amos", "Amós"},
	{"obadiah", "abdias", "Abdías"},
	{"jonah", "jonas", "Jonás"},
	{"micah", "miqueas", "Miqueas"},
	{"nahum", "nahum", "Nahúm"},
	{"habakkuk", "habacuc", "Habacuc"},
	{"zephaniah", "sofonias", "Sofonías"},
	{"haggai", "hageo", "Hageo"},
	{"zechariah", "zacarias", "Zacarías"},
	{"malachi", "malaquias", "Malaquías"},
	{"matthew", "mateo", "Mateo"},
	{"mark", "marcos", "Marcos"},
	{"luke", "lucas", "Lucas"},
	{"john", "juan", "Juan"},
	{"acts", "hechos", "Hechos"},
	{"romans", "romanos", "Romanos"},
	{"1_corinthians", "1_corintios", "1 Corintios"},
	{"2_corinthians", "2_corintios", "2 Corintios"},
	{"galatians", "galatas", "Gálatas"},
	{"ephesians", "efesios", "Efesios"},
	{"philippians", "filipenses", "Filipenses"},
	{"colossians", "colosenses", "Colosenses"},
	{"1_thessalonians", "1_tesalonicenses", "1 Tesalonicenses"},
	{"2_thessalonians", "2_tesalonicenses", "2 Tesalonicenses"},
	{"1_timothy", "1_timoteo", "1 Timoteo"},
	{"2_timothy", "2_timoteo", "2 Timoteo"},
	{"titus", "tito", "Tito"},
	{"philemon", "filemon", "Filemón"},
	{"hebrews", "hebreos", "Hebreos"},
	{"james", "santiago", "Santiago"},
	{"1_peter", "1_pedro", "1 Pedro"},
	{"2_peter", "2_pedro", "2 Pedro"},
	{"1_john", "1_juan", "1 Juan"},
	{"2_john", "2_juan", "2 Juan"},
	{"3_john", "3_juan", "3 Juan"},
	{"jude", "judas", "Judas"},
	{"revelation", "apocalipsis", "Apocalipsis"},
}

// Index maps built at init time, keyed by normalized identifiers.
var (
	byEnglish map[string]*bookEntry
	bySpanish map[string]*bookEntry
)

func init() {
	byEnglish = make(map[string]*bookEntry, len(books))
	bySpanish = make(map[string]*bookEntry, len(books))
	for i := range books {
		e := &books[i]
		byEnglish[e.en] = e
		bySpanish[e.es] = e
	}
}

// BookToSpanish resolves an English book identifier to its Spanish counterpart.
// The second return reports whether the book is known.
func BookToSpanish(book string) (string, bool) {
	if e, ok := byEnglish[textutil.NormalizeBookID(book)]; ok {
		return e.es, true
	}
	return "", false
}

// BookToEnglish resolves a Spanish book identifier to its English counterpart.
func BookToEnglish(book string) (string, bool) {
	if e, ok := bySpanish[textutil.NormalizeBookID(book)]; ok {
		return e.en, true
	}
	return "", false
}

// BookDisplayNameES returns the accented human-facing Spanish book name for a
// book identifier in either language, or the input unchanged when unknown.
func BookDisplayNameES(book string) string {
	id := textutil.NormalizeBookID(book)
	if e, ok := bySpanish[id]; ok {
		return e.esDisplay
	}
	if e, ok := byEnglish[id]; ok {
		return e.esDisplay
	}
	return book
}

// KnownBooks returns the canonical book identifiers for one language, in
// canonical order.
func KnownBooks(lang Language) []string {
	out := make([]string, 0, len(books))
	for i := range books {
		if lang == LanguageSpanish {
			out = append(out, books[i].es)
		} else {
			out = append(out, books[i].en)
		}
	}
	return out
}
