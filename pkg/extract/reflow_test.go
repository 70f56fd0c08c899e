package extract

import (
	"reflect"
	"strings"
	"testing"
)

func TestReflow_JoinsHyphenatedLines(t *testing.T) {
	lines := []string{
		"por la cual se dictan disposi-",
		"ciones en materia tributaria",
	}
	got := Reflow(lines)
	want := []string{"por la cual se dictan disposiciones en materia tributaria"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_DropsEmptyLines(t *testing.T) {
	lines := []string{"", "DECRETO NÚMERO 123 DE 2020", "   ", "Por la cual se ordena"}
	got := Reflow(lines)
	want := []string{"DECRETO NÚMERO 123 DE 2020", "Por la cual se ordena"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_HyphenSpansEmptyLine(t *testing.T) {
	lines := []string{"protec-", "", "ción social"}
	got := Reflow(lines)
	want := []string{"protección social"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_ChainedHyphenation(t *testing.T) {
	lines := []string{"admi-", "nistra-", "tivo nacional"}
	got := Reflow(lines)
	want := []string{"administrativo nacional"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_TrailingFragmentEmitted(t *testing.T) {
	got := Reflow([]string{"texto incom-"})
	want := []string{"texto incom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_FixesExtractionArtifacts(t *testing.T) {
	// Ligatures and non-breaking spaces come from the extraction layer;
	// soft hyphens behave like plain hyphens for the join.
	got := Reflow([]string{"oﬁcial del", "estado­", "unitario"})
	want := []string{"oficial del", "estadounitario"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reflow() = %v, want %v", got, want)
	}
}

func TestReflow_RecoversInputModuloHyphens(t *testing.T) {
	// Concatenating the output recovers the input with blank lines removed
	// and hyphen-line-breaks collapsed.
	lines := []string{"primera línea", "", "segunda divi-", "dida", "tercera"}
	got := strings.Join(Reflow(lines), "\n")
	want := "primera línea\nsegunda dividida\ntercera"
	if got != want {
		t.Errorf("joined reflow = %q, want %q", got, want)
	}
}

func TestReflowPages_JoinsAcrossPages(t *testing.T) {
	pages := []string{"línea uno\ncorta-", "da en dos\nlínea final"}
	got := ReflowPages(pages)
	want := "línea uno\ncortada en dos\nlínea final"
	if got != want {
		t.Errorf("ReflowPages() = %q, want %q", got, want)
	}
}
