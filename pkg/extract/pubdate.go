package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// pubDatePattern matches the issue header idiom
// "Bogotá, D. C., <weekday>, <day> de <month> de <year>".
var pubDatePattern = regexp.MustCompile(`(?i)Bogot[áa],\s*D\.\s*C\.,\s*[^,]+,\s*(\d{1,2})\s+de\s+(\p{L}+)\s+de\s+(\d{4})`)

// spanishMonths maps lowercased Spanish month names to zero-padded numbers.
var spanishMonths = map[string]string{
	"enero":      "01",
	"febrero":    "02",
	"marzo":      "03",
	"abril":      "04",
	"mayo":       "05",
	"junio":      "06",
	"julio":      "07",
	"agosto":     "08",
	"septiembre": "09",
	"octubre":    "10",
	"noviembre":  "11",
	"diciembre":  "12",
}

// ExtractPublicationDate pulls the issue-level publication date out of the
// reflowed issue text and returns it as YYYY-MM-DD. This is a best-effort
// header field: a missing header or an unknown month name yields "".
func ExtractPublicationDate(text string) string {
	m := pubDatePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	month, ok := spanishMonths[strings.ToLower(m[2])]
	if !ok {
		return ""
	}
	day := m[1]
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%s-%s-%s", m[3], month, day)
}
