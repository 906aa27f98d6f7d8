package parsing

import "strings"

// defaultLanguage is returned when no locale vocabulary scores a hit.
const defaultLanguage = "en"

// languageTags fixes the iteration order so detection is deterministic.
var languageTags = []string{"en", "es", "fr", "de", "pt", "it", "nl", "pl"}

// languageVocab holds each locale's section-heading words. Counting their
// occurrences in the raw text is enough of a signal for a language hint.
var languageVocab = map[string][]string{
	"en": {"summary", "experience", "education", "skills", "projects"},
	"es": {"resumen", "experiencia", "educación", "habilidades", "proyectos", "formación"},
	"fr": {"expérience", "formation", "compétences", "projets", "profil professionnel"},
	"de": {"zusammenfassung", "berufserfahrung", "ausbildung", "kenntnisse", "projekte"},
	"pt": {"resumo", "experiência", "formação", "competências", "projetos"},
	"it": {"sommario", "esperienza", "istruzione", "competenze", "progetti"},
	"nl": {"samenvatting", "werkervaring", "opleiding", "vaardigheden", "projecten"},
	"pl": {"podsumowanie", "doświadczenie", "wykształcenie", "umiejętności", "projekty"},
}

// DetectLanguage picks the locale whose heading vocabulary occurs most often
// in the text. The result is advisory metadata only; it never changes which
// canonical sections exist or how they parse.
func DetectLanguage(text string) string {
	lower := strings.ToLower(text)

	best := defaultLanguage
	bestCount := 0
	for _, tag := range languageTags {
		count := 0
		for _, word := range languageVocab[tag] {
			count += strings.Count(lower, word)
		}
		if count > bestCount {
			best = tag
			bestCount = count
		}
	}
	return best
}
