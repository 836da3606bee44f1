package understand

// lexiconEntry maps a canonical fashion term to misspellings seen in
// real shopper queries. Slices keep matching order deterministic.
type lexiconEntry struct {
	canonical string
	variants  []string
}

var fashionLexicon = []lexiconEntry{
	{"dress", []string{"dres", "dreses", "dresess", "dresz", "drss"}},
	{"cardigan", []string{"cardign", "cardgan"}},
	{"sweater", []string{"sweeter", "sweter", "swaeter"}},
	{"jacket", []string{"jackett", "jaket", "jakcet"}},
	{"shirt", []string{"shrit", "shrt"}},
	{"pants", []string{"pant", "pnts", "pantz"}},
	{"jeans", []string{"jean", "jeens", "jens"}},
	{"blouse", []string{"blouce", "bluse", "blouze"}},
	{"skirt", []string{"skrt", "skrit"}},
	{"top", []string{"tp", "topp"}},
	{"party", []string{"pary", "partyy", "parti"}},
	{"black", []string{"blak", "blck", "blac"}},
	{"white", []string{"whit", "whte"}},
	{"red", []string{"rd"}},
	{"blue", []string{"blu", "bleu"}},
	{"elegant", []string{"elegnt", "elgant", "elegan"}},
	{"casual", []string{"casul", "casula"}},
	{"formal", []string{"forml", "forma"}},
	{"sexy", []string{"secy"}},
	{"vintage", []string{"vintag", "vintge"}},
	{"silk", []string{"sil", "slik"}},
	{"cotton", []string{"coton", "cotn", "cottn"}},
	{"leather", []string{"lether", "leathr", "leathe"}},
}

// normalizeStopWords are short function words skipped during typo
// matching so they cannot fuzzy-match lexicon terms.
var normalizeStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "for": {}, "in": {}, "of": {},
	"on": {}, "or": {}, "the": {}, "to": {}, "with": {}, "my": {},
}
