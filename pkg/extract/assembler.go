package extract

// Assemble runs the full pipeline over one issue's per-page text: reflow,
// issue-level publication date, table of contents, boundary scan, and
// per-document field parsing and institution resolution. Records come back
// in document-appearance order; no document is dropped over a partial-field
// failure. An issue with no recognizable boundary yields an empty list.
func Assemble(pages []string) []Record {
	text := ReflowPages(pages)

	pubDate := ExtractPublicationDate(text)
	toc := ExtractTOC(text)
	spans := ScanBoundaries(text)

	records := make([]Record, 0, len(spans))
	for _, sp := range spans {
		body := text[sp.Start:sp.End]
		fields := ParseFields(body)

		records = append(records, Record{
			TipoDocumento:    fields.Tipo,
			Numero:           fields.Numero,
			Anio:             fields.Anio,
			Titulo:           fields.Titulo,
			Proposito:        ExtractPurpose(body),
			Descripcion:      fields.Descripcion,
			FechaPublicacion: pubDate,
			Institucion:      ResolveEntity(toc, fields.Tipo, fields.Numero, fields.Anio),
		})
	}
	return records
}
