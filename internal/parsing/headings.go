// Package parsing implements the heuristic document-structure pipeline that
// turns flat resume text into a normalized, typed record.
package parsing

import (
	"regexp"
	"strings"
)

// Section identifies a canonical resume section.
type Section string

// Canonical section names. Every input line lands in exactly one of these
// buckets; "header" absorbs lines preceding the first recognized heading.
const (
	SectionHeader         Section = "header"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionProjects       Section = "projects"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionConferences    Section = "conferences"
	SectionPublications   Section = "publications"
	SectionAwards         Section = "awards"
	SectionOther          Section = "other"
)

// headingDictionary maps localized heading text (lowercased, decorations
// stripped) to its canonical section. Covers English, Spanish, French,
// German, Portuguese, Italian, Dutch, and Polish variants.
var headingDictionary = map[string]Section{
	// summary
	"summary":                  SectionSummary,
	"professional summary":     SectionSummary,
	"profile":                  SectionSummary,
	"professional profile":     SectionSummary,
	"objective":                SectionSummary,
	"about":                    SectionSummary,
	"about me":                 SectionSummary,
	"resumen":                  SectionSummary,
	"perfil":                   SectionSummary,
	"perfil profesional":       SectionSummary,
	"extracto":                 SectionSummary,
	"profil":                   SectionSummary,
	"profil professionnel":     SectionSummary,
	"à propos":                 SectionSummary,
	"zusammenfassung":          SectionSummary,
	"über mich":                SectionSummary,
	"resumo":                   SectionSummary,
	"perfil profissional":      SectionSummary,
	"sobre mim":                SectionSummary,
	"sommario":                 SectionSummary,
	"profilo":                  SectionSummary,
	"profilo professionale":    SectionSummary,
	"profiel":                  SectionSummary,
	"samenvatting":             SectionSummary,
	"over mij":                 SectionSummary,
	"podsumowanie":             SectionSummary,
	"profil zawodowy":          SectionSummary,
	"o mnie":                   SectionSummary,

	// experience
	"experience":                 SectionExperience,
	"work experience":            SectionExperience,
	"professional experience":    SectionExperience,
	"employment":                 SectionExperience,
	"employment history":         SectionExperience,
	"work history":               SectionExperience,
	"career":                     SectionExperience,
	"career history":             SectionExperience,
	"experiencia":                SectionExperience,
	"experiencia laboral":        SectionExperience,
	"experiencia profesional":    SectionExperience,
	"expérience":                 SectionExperience,
	"expérience professionnelle": SectionExperience,
	"parcours professionnel":     SectionExperience,
	"berufserfahrung":            SectionExperience,
	"werdegang":                  SectionExperience,
	"beruflicher werdegang":      SectionExperience,
	"experiência":                SectionExperience,
	"experiência profissional":   SectionExperience,
	"esperienza":                 SectionExperience,
	"esperienza lavorativa":      SectionExperience,
	"esperienza professionale":   SectionExperience,
	"werkervaring":               SectionExperience,
	"doświadczenie":              SectionExperience,
	"doświadczenie zawodowe":     SectionExperience,

	// projects
	"projects":          SectionProjects,
	"personal projects": SectionProjects,
	"selected projects": SectionProjects,
	"proyectos":         SectionProjects,
	"projets":           SectionProjects,
	"projekte":          SectionProjects,
	"projetos":          SectionProjects,
	"progetti":          SectionProjects,
	"projecten":         SectionProjects,
	"projekty":          SectionProjects,

	// education
	"education":           SectionEducation,
	"academic background": SectionEducation,
	"educación":           SectionEducation,
	"formación":           SectionEducation,
	"formación académica":  SectionEducation,
	"formation":           SectionEducation,
	"études":              SectionEducation,
	"ausbildung":          SectionEducation,
	"bildung":             SectionEducation,
	"studium":             SectionEducation,
	"educação":            SectionEducation,
	"formação":            SectionEducation,
	"formação acadêmica":   SectionEducation,
	"formazione":          SectionEducation,
	"istruzione":          SectionEducation,
	"opleiding":           SectionEducation,
	"opleidingen":         SectionEducation,
	"wykształcenie":       SectionEducation,
	"edukacja":            SectionEducation,

	// skills
	"skills":           SectionSkills,
	"technical skills": SectionSkills,
	"core skills":      SectionSkills,
	"competencies":     SectionSkills,
	"habilidades":      SectionSkills,
	"competencias":     SectionSkills,
	"compétences":      SectionSkills,
	"kenntnisse":       SectionSkills,
	"fähigkeiten":      SectionSkills,
	"competências":     SectionSkills,
	"competenze":       SectionSkills,
	"vaardigheden":     SectionSkills,
	"umiejętności":     SectionSkills,

	// certifications
	"certifications":  SectionCertifications,
	"certification":   SectionCertifications,
	"certificates":    SectionCertifications,
	"licenses":        SectionCertifications,
	"certificaciones": SectionCertifications,
	"certificados":    SectionCertifications,
	"zertifikate":     SectionCertifications,
	"zertifizierungen": SectionCertifications,
	"certificações":   SectionCertifications,
	"certificazioni":  SectionCertifications,
	"certificaten":    SectionCertifications,
	"certyfikaty":     SectionCertifications,

	// conferences
	"conferences":  SectionConferences,
	"conference":   SectionConferences,
	"talks":        SectionConferences,
	"speaking":     SectionConferences,
	"conferencias": SectionConferences,
	"conférences":  SectionConferences,
	"konferenzen":  SectionConferences,
	"conferências": SectionConferences,
	"conferenze":   SectionConferences,
	"conferenties": SectionConferences,
	"konferencje":  SectionConferences,

	// publications
	"publications":  SectionPublications,
	"publicaciones": SectionPublications,
	"publikationen": SectionPublications,
	"publicações":   SectionPublications,
	"pubblicazioni": SectionPublications,
	"publicaties":   SectionPublications,
	"publikacje":    SectionPublications,

	// awards
	"awards":          SectionAwards,
	"achievements":    SectionAwards,
	"honors":          SectionAwards,
	"honours":         SectionAwards,
	"premios":         SectionAwards,
	"logros":          SectionAwards,
	"récompenses":     SectionAwards,
	"distinctions":    SectionAwards,
	"auszeichnungen":  SectionAwards,
	"prêmios":         SectionAwards,
	"conquistas":      SectionAwards,
	"premi":           SectionAwards,
	"riconoscimenti":  SectionAwards,
	"onderscheidingen": SectionAwards,
	"nagrody":         SectionAwards,
	"osiągnięcia":     SectionAwards,
}

// allCapsHeadingPattern matches shouty standalone headings such as
// "WORK EXPERIENCE" or "SKILLS & TOOLS": uppercase letters, spaces, and a
// small set of joiners, 3 to 47 characters long.
var allCapsHeadingPattern = regexp.MustCompile(`^[A-ZÀ-ÞŁŚŻ][A-ZÀ-ÞŁŚŻ &/+\-]{2,46}$`)

// headingFallbacks are keyword probes applied to ALL-CAPS lines that missed
// the dictionary. Order matters: the first matching pattern wins.
var headingFallbacks = []struct {
	section Section
	pattern *regexp.Regexp
}{
	{SectionExperience, regexp.MustCompile(`experien|employ|work hist|career|laboral|erfahrung|ervaring|emploi|parcours|doświadczeni`)},
	{SectionEducation, regexp.MustCompile(`educat|educa[cç]|academ|formaci|formation|forma[cç]|ausbildung|studium|istruzione|opleiding|wykształ|étude`)},
	{SectionProjects, regexp.MustCompile(`project|proyecto|projet|projekt|progett`)},
	{SectionSkills, regexp.MustCompile(`skill|habilidad|competenc|compétence|kenntnis|fähigkeit|competên|vaardighed|umiejętno`)},
	{SectionCertifications, regexp.MustCompile(`certif|licen[sc]|zertif|certyf`)},
	{SectionConferences, regexp.MustCompile(`conferen|confére|konferen|talk|speaking`)},
	{SectionPublications, regexp.MustCompile(`publica|pubblica|publikac|publikation`)},
	{SectionAwards, regexp.MustCompile(`award|achieve|honou?r|premio|logro|récompense|auszeichnung|prêmio|nagrod|osiągnię`)},
	{SectionSummary, regexp.MustCompile(`summar|profil|objectiv|about|resume[nm]|extracto|zusammenfassung|sommario|samenvatting|podsumowanie`)},
}

// decorationCutset holds glyphs stripped from heading edges before matching.
const decorationCutset = " \t-–—=_*•·●▪◦:|#~<>[](){}"

// NormalizeHeading resolves a candidate line to a canonical section name.
// The exact-match dictionary always wins; the ALL-CAPS keyword fallback only
// runs when the dictionary misses. Returns ok=false for ordinary content.
func NormalizeHeading(line string) (Section, bool) {
	stripped := strings.Trim(line, decorationCutset)
	if stripped == "" {
		return "", false
	}

	lower := strings.ToLower(stripped)
	lower = strings.TrimRight(lower, ":-–—| \t")

	if section, ok := headingDictionary[lower]; ok {
		return section, true
	}

	if allCapsHeadingPattern.MatchString(stripped) {
		for _, fb := range headingFallbacks {
			if fb.pattern.MatchString(lower) {
				return fb.section, true
			}
		}
	}

	return "", false
}
