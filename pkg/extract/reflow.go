package extract

import (
	"strings"
)

// artifactReplacer fixes the small set of known PDF-extraction artifacts:
// ligature glyphs, soft hyphens and non-breaking spaces. Nothing else is
// corrected at this layer.
var artifactReplacer = strings.NewReplacer(
	"ﬁ", "fi",
	"ﬂ", "fl",
	"­", "-",
	" ", " ",
)

// Reflow merges hyphen-broken lines into linear reading order. Empty lines
// are dropped; a line ending in "-" is held and concatenated directly with
// the next non-empty line so a word split across a column or line wrap comes
// back as one token. No geometric column reordering is attempted.
func Reflow(lines []string) []string {
	var out []string
	var pending strings.Builder

	for _, line := range lines {
		line = strings.TrimSpace(artifactReplacer.Replace(line))
		if line == "" {
			continue
		}
		if strings.HasSuffix(line, "-") {
			pending.WriteString(strings.TrimSuffix(line, "-"))
			continue
		}
		if pending.Len() > 0 {
			pending.WriteString(line)
			out = append(out, pending.String())
			pending.Reset()
			continue
		}
		out = append(out, line)
	}

	// A trailing hyphenated fragment has nothing to join with; emit it as-is.
	if pending.Len() > 0 {
		out = append(out, pending.String())
	}

	return out
}

// ReflowPages reflows every page of an issue and joins the result into one
// newline-separated text.
func ReflowPages(pages []string) string {
	var lines []string
	for _, page := range pages {
		lines = append(lines, strings.Split(page, "\n")...)
	}
	return strings.Join(Reflow(lines), "\n")
}
