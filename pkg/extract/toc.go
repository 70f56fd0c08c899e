package extract

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// entityHeadingPattern recognizes institution headings in the table of
	// contents. Shared with entity-name cleanup.
	entityHeadingPattern = regexp.MustCompile(`(?i)^(MINISTERIO|DEPARTAMENTO|ENTIDAD|ORGANISMO)`)

	// pageNumberPattern matches lines containing only a page number.
	pageNumberPattern = regexp.MustCompile(`^\d+\s*$`)

	// pageWordPattern matches the page-break idiom ending the TOC region.
	pageWordPattern = regexp.MustCompile(`(?i)p[áa]gina`)
)

// ExtractTOC scans the table-of-contents region of the reflowed issue text
// for (institution, line) pairs. An institution heading updates the current
// entity; every other non-empty line is recorded against it. The region
// starts after the "Contenido" heading (letter-spaced variants tolerated)
// and ends at the first page-break line, or at end of text. A missing
// heading yields no entries.
func ExtractTOC(text string) []TocEntry {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if isContentsHeading(line) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}

	var entries []TocEntry
	entity := ""
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if pageNumberPattern.MatchString(trimmed) || pageWordPattern.MatchString(trimmed) {
			break
		}
		if entityHeadingPattern.MatchString(trimmed) {
			entity = trimmed
			continue
		}
		entries = append(entries, TocEntry{Entity: entity, Line: trimmed})
	}
	return entries
}

// isContentsHeading reports whether a line spells "Contenido" once interior
// whitespace is dropped, so letter-spaced headings like "C o n t e n i d o"
// are recognized too.
func isContentsHeading(line string) bool {
	squashed := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	return strings.EqualFold(squashed, "contenido")
}
