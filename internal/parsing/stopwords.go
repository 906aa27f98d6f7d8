package parsing

// stopwords holds common function words across the supported locales
// (English, Spanish, French, German, Portuguese, Italian, Dutch, Polish).
// Tokens in this set never become keywords.
var stopwords = buildStopwords(
	// English
	"the", "and", "for", "with", "that", "this", "are", "was", "were",
	"been", "from", "have", "has", "had", "not", "but", "you", "your",
	"our", "their", "will", "can", "all", "any", "into", "out", "also",
	// Spanish
	"los", "las", "una", "uno", "del", "con", "por", "para", "que", "como",
	"más", "sus", "este", "esta", "entre", "sobre", "donde",
	// French
	"les", "des", "une", "dans", "pour", "avec", "sur", "est", "aux",
	"par", "plus", "ses", "cette", "sont", "dont", "ainsi",
	// German
	"der", "die", "das", "und", "mit", "von", "für", "auf", "ein", "eine",
	"als", "auch", "bei", "durch", "nach", "über", "wurde", "sowie",
	// Portuguese
	"uma", "com", "não", "mais", "dos", "das", "pela", "pelo", "seu",
	"sua", "entre", "sobre", "onde", "como",
	// Italian
	"della", "delle", "degli", "nel", "nella", "con", "per", "che", "una",
	"gli", "sono", "come", "più", "anche",
	// Dutch
	"het", "een", "van", "voor", "met", "aan", "bij", "uit", "naar",
	"ook", "zijn", "werd", "deze", "door",
	// Polish
	"nie", "jest", "oraz", "dla", "przez", "jako", "się", "które", "przy",
	"tym", "tego", "była", "był",
)

func buildStopwords(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
