// Package export serializes extracted gazette records to CSV and JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/coolbeans/gaceta/pkg/extract"
)

// csvHeader fixes the column order of the tabular output.
var csvHeader = []string{
	"archivo",
	"tipo_documento",
	"numero",
	"anio",
	"titulo",
	"proposito",
	"descripcion",
	"fecha_publicacion",
	"institucion",
}

// WriteCSV writes records as UTF-8 CSV with a header row, one row per record.
func WriteCSV(w io.Writer, records []extract.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Archivo,
			string(r.TipoDocumento),
			r.Numero,
			r.Anio,
			r.Titulo,
			r.Proposito,
			r.Descripcion,
			r.FechaPublicacion,
			r.Institucion,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes records as one JSON array.
func WriteJSON(w io.Writer, records []extract.Record) error {
	if records == nil {
		records = []extract.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// OutputName builds a timestamped result file name such as
// "resultados_20200105_143000.csv".
func OutputName(format string, now time.Time) string {
	return fmt.Sprintf("resultados_%s.%s", now.Format("20060102_150405"), format)
}
