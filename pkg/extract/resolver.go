package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// UnknownInstitution is the sentinel emitted when no institution can be
// attributed to a document.
const UnknownInstitution = "INSTITUCIÓN DESCONOCIDA"

// entityStopwords mark the end of an institution name inside a TOC line.
// The stopword and everything after it are discarded.
var entityStopwords = map[string]struct{}{
	"COMUNICAR":  {},
	"POR":        {},
	"DECRETO":    {},
	"RESOLUCIÓN": {},
	"RESOLUCION": {},
	"ACUERDO":    {},
	"CIRCULAR":   {},
	"CONTENIDO":  {},
	"PRESENTE":   {},
	"DOCTORES":   {},
}

// stripMarks removes diacritics by decomposing and dropping combining marks.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares text for fuzzy comparison: Unicode decomposition,
// diacritic stripping, uppercasing.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

// ResolveEntity attributes an issuing institution to a document identified
// by (tipo, numero, anio), via a waterfall of independent passes over the
// TOC entries:
//
//  1. the normalized line contains tipo, numero and anio;
//  2. the line contains numero and anio;
//  3. the line contains anio only (known-low-precision, kept as-is);
//  4. the institution of the last entry carrying one, regardless of content;
//  5. the UnknownInstitution sentinel.
//
// Resolved names pass through CleanEntityName.
func ResolveEntity(entries []TocEntry, tipo DocumentType, numero, anio string) string {
	nTipo := Normalize(string(tipo))
	nNumero := Normalize(numero)
	nAnio := Normalize(anio)

	lastEntity := ""
	for _, e := range entries {
		if e.Entity != "" {
			lastEntity = e.Entity
		}
		line := Normalize(e.Line)
		if e.Entity != "" &&
			strings.Contains(line, nTipo) &&
			strings.Contains(line, nNumero) &&
			strings.Contains(line, nAnio) {
			return CleanEntityName(e.Entity)
		}
	}

	for _, e := range entries {
		line := Normalize(e.Line)
		if e.Entity != "" && strings.Contains(line, nNumero) && strings.Contains(line, nAnio) {
			return CleanEntityName(e.Entity)
		}
	}

	for _, e := range entries {
		if e.Entity != "" && strings.Contains(Normalize(e.Line), nAnio) {
			return CleanEntityName(e.Entity)
		}
	}

	if lastEntity != "" {
		return CleanEntityName(lastEntity)
	}
	return UnknownInstitution
}

// CleanEntityName finds the boundary of an institution name heuristically:
// truncate at the first newline or period; when the name starts like an
// institution heading, keep words up to the first stopword; otherwise keep
// the first 8 words. The result is title-cased.
func CleanEntityName(raw string) string {
	name := raw
	if i := strings.IndexAny(name, "\n."); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	words := strings.Fields(name)

	if entityHeadingPattern.MatchString(name) {
		kept := words[:0:0]
		for _, w := range words {
			if _, stop := entityStopwords[strings.ToUpper(w)]; stop {
				break
			}
			kept = append(kept, w)
		}
		words = kept
	} else if len(words) > 8 {
		words = words[:8]
	}

	return cases.Title(language.Spanish).String(strings.Join(words, " "))
}
