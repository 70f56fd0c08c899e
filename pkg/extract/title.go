package extract

import (
	"regexp"
	"strings"
)

// Fields holds the structured pieces parsed out of one document span.
type Fields struct {
	Tipo        DocumentType
	Numero      string
	Anio        string
	Titulo      string
	Descripcion string
}

// classifierPatterns back the keyword fallback used when the anchored title
// match fails. Order matters: RESOLUCIÓN EJECUTIVA before RESOLUCIÓN.
var classifierPatterns = []struct {
	docType DocumentType
	re      *regexp.Regexp
}{
	{TypeDecreto, regexp.MustCompile(`(?i)\bDECRETO\b`)},
	{TypeResolucionEjecutiva, regexp.MustCompile(`(?i)\bRESOLUCI[ÓO]N\s+EJECUTIVA\b`)},
	{TypeResolucion, regexp.MustCompile(`(?i)\bRESOLUCI[ÓO]N\b`)},
	{TypeCircularConjunta, regexp.MustCompile(`(?i)\bCIRCULAR\s+EXTERNA\s+CONJUNTA\b`)},
	{TypeAcuerdo, regexp.MustCompile(`(?i)\bACUERDO\b`)},
}

var (
	purposeStartPattern = regexp.MustCompile(`(?i)por la cual`)
	purposeEndPattern   = regexp.MustCompile(`(?i)ACUERDO`)
)

// ParseFields splits one document span into its structured fields. Line 0
// is the title; an anchored re-match of the boundary patterns extracts
// (tipo, numero, anio), falling back to keyword classification with empty
// numero/anio when the match fails. Lines shaped like a parenthesized date
// annotation are pulled out of the body (last one wins) and appended to the
// title; everything else becomes the description.
func ParseFields(text string) Fields {
	lines := strings.Split(text, "\n")
	title := strings.TrimSpace(lines[0])

	tipo, numero, anio, ok := MatchTitle(title)
	if !ok {
		tipo = ClassifyType(title)
		numero, anio = "", ""
	}

	var fecha string
	var body []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
			fecha = trimmed
			continue
		}
		body = append(body, trimmed)
	}

	titulo := title
	if fecha != "" {
		titulo += "\n" + fecha
	}

	return Fields{
		Tipo:        tipo,
		Numero:      numero,
		Anio:        anio,
		Titulo:      titulo,
		Descripcion: strings.Join(body, "\n"),
	}
}

// MatchTitle re-matches the boundary pattern set anchored at the start of a
// title line. ok is false when no pattern matches there.
func MatchTitle(title string) (tipo DocumentType, numero, anio string, ok bool) {
	for _, tp := range boundaryPatterns {
		if m := tp.anchored.FindStringSubmatch(title); m != nil {
			return tp.docType, m[1], m[2], true
		}
	}
	return "", "", "", false
}

// ClassifyType assigns a document type by keyword search over a title that
// did not match any structural pattern. The waterfall is checked in order;
// no hit classifies the document as TypeOtro.
func ClassifyType(title string) DocumentType {
	for _, cp := range classifierPatterns {
		if cp.re.MatchString(title) {
			return cp.docType
		}
	}
	return TypeOtro
}

// ExtractPurpose returns the purpose clause of an act: the span starting at
// "por la cual" and ending immediately before the next "ACUERDO", both
// case-insensitive. Either anchor missing yields "".
func ExtractPurpose(text string) string {
	start := purposeStartPattern.FindStringIndex(text)
	if start == nil {
		return ""
	}
	rest := text[start[0]:]
	end := purposeEndPattern.FindStringIndex(rest)
	if end == nil {
		return ""
	}
	return strings.TrimSpace(rest[:end[0]])
}
