package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coolbeans/gaceta/pkg/extract"
)

func sampleRecords() []extract.Record {
	return []extract.Record{
		{
			Archivo:          "gaceta_51234.pdf",
			TipoDocumento:    extract.TypeDecreto,
			Numero:           "123",
			Anio:             "2020",
			Titulo:           "DECRETO NÚMERO 123 DE 2020",
			Proposito:        "por la cual se ordena el gasto",
			Descripcion:      "Por la cual se ordena el gasto\ncuerpo",
			FechaPublicacion: "2020-01-05",
			Institucion:      "Ministerio De Hacienda",
		},
		{
			Archivo:       "gaceta_51234.pdf",
			TipoDocumento: extract.TypeOtro,
			Institucion:   extract.UnknownInstitution,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	out := sb.String()

	if !strings.HasPrefix(out, "archivo,tipo_documento,numero,anio,titulo,proposito,descripcion,fecha_publicacion,institucion\n") {
		t.Errorf("csv header missing or wrong, got %q", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "Ministerio De Hacienda") {
		t.Errorf("csv output missing record data: %q", out)
	}
	if !strings.Contains(out, extract.UnknownInstitution) {
		t.Errorf("csv output missing sentinel institution: %q", out)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	var sb strings.Builder
	records := sampleRecords()
	if err := WriteJSON(&sb, records); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []extract.Record
	if err := json.Unmarshal([]byte(sb.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("decoded %d records, want %d", len(decoded), len(records))
	}
	if decoded[0].TipoDocumento != extract.TypeDecreto {
		t.Errorf("decoded TipoDocumento = %q, want %q", decoded[0].TipoDocumento, extract.TypeDecreto)
	}
	if decoded[0].Numero != "123" {
		t.Errorf("decoded Numero = %q, want 123", decoded[0].Numero)
	}
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	var sb strings.Builder
	if err := WriteJSON(&sb, nil); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if got := strings.TrimSpace(sb.String()); got != "[]" {
		t.Errorf("WriteJSON(nil) = %q, want []", got)
	}
}

func TestOutputName(t *testing.T) {
	now := time.Date(2020, 1, 5, 14, 30, 0, 0, time.UTC)
	if got := OutputName("csv", now); got != "resultados_20200105_143000.csv" {
		t.Errorf("OutputName() = %q", got)
	}
	if got := OutputName("json", now); got != "resultados_20200105_143000.json" {
		t.Errorf("OutputName() = %q", got)
	}
}
