package extract

import (
	"regexp"
)

// typePattern pairs a document type with the boundary marker pattern that
// opens an act of that type. The search form matches anywhere; the anchored
// form is used to re-extract fields from a title line.
type typePattern struct {
	docType  DocumentType
	re       *regexp.Regexp
	anchored *regexp.Regexp
}

func newTypePattern(docType DocumentType, expr string) typePattern {
	return typePattern{
		docType:  docType,
		re:       regexp.MustCompile(`(?i)` + expr),
		anchored: regexp.MustCompile(`(?i)^` + expr),
	}
}

// boundaryPatterns is order-sensitive: RESOLUCIÓN EJECUTIVA must come before
// RESOLUCIÓN because the latter's keyword is a prefix of the former's. Each
// pattern tolerates the unaccented NUMERO and RESOLUCION spellings seen in
// extracted scans. Capture groups: (numero, anio).
var boundaryPatterns = []typePattern{
	newTypePattern(TypeDecreto, `DECRETO\s+N[ÚU]MERO\s+(\d+)\s+DE\s+(\d{4})`),
	newTypePattern(TypeResolucionEjecutiva, `RESOLUCI[ÓO]N\s+EJECUTIVA\s+N[ÚU]MERO\s+(\d+)\s+DE\s+(\d{4})`),
	newTypePattern(TypeResolucion, `RESOLUCI[ÓO]N\s+N[ÚU]MERO\s+(\d+)\s+DE\s+(\d{4})`),
	newTypePattern(TypeCircularConjunta, `CIRCULAR\s+EXTERNA\s+CONJUNTA\s+N[ÚU]MERO\s+(\d+)\s+DE\s+(\d{4})`),
	newTypePattern(TypeAcuerdo, `ACUERDO\s+N[ÚU]MERO\s+(\d+)\s+DE\s+(\d{4})`),
}

// ScanBoundaries locates every legal-act boundary marker in the reflowed
// issue text and returns the contiguous, non-overlapping spans between
// successive markers. The final span runs to the end of the text; text
// before the first marker is never captured. Zero markers yield no spans.
func ScanBoundaries(text string) []Span {
	var spans []Span

	cur, ok := findBoundary(text, 0)
	if !ok {
		return spans
	}
	for {
		next, ok := findBoundary(text, cur+1)
		if !ok {
			spans = append(spans, Span{Start: cur, End: len(text)})
			return spans
		}
		spans = append(spans, Span{Start: cur, End: next})
		cur = next
	}
}

// findBoundary returns the earliest boundary marker offset at or after from.
// Ties at the same offset resolve in boundaryPatterns order.
func findBoundary(text string, from int) (int, bool) {
	if from >= len(text) {
		return 0, false
	}
	best := -1
	for _, tp := range boundaryPatterns {
		loc := tp.re.FindStringIndex(text[from:])
		if loc == nil {
			continue
		}
		if start := from + loc[0]; best == -1 || start < best {
			best = start
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
