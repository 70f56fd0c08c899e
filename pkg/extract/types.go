// Package extract reconstructs structured legal-act records from the raw
// page text of official gazette issues.
package extract

// DocumentType identifies the kind of legal act a record describes.
type DocumentType string

const (
	TypeDecreto             DocumentType = "DECRETO"
	TypeResolucion          DocumentType = "RESOLUCIÓN"
	TypeResolucionEjecutiva DocumentType = "RESOLUCIÓN EJECUTIVA"
	TypeCircularConjunta    DocumentType = "CIRCULAR EXTERNA CONJUNTA"
	TypeAcuerdo             DocumentType = "ACUERDO"
	TypeOtro                DocumentType = "OTRO"
)

// Record is one extracted legal act. Field names follow the tabular output
// contract of the gazette datasets.
type Record struct {
	// Archivo is the source file name, set by the caller.
	Archivo string `json:"archivo,omitempty"`

	// TipoDocumento is the classified act type, TypeOtro when unrecognized.
	TipoDocumento DocumentType `json:"tipo_documento"`

	// Numero is the act number as printed (digits), empty on a parse miss.
	Numero string `json:"numero"`

	// Anio is the 4-digit year, empty on a parse miss.
	Anio string `json:"anio"`

	// Titulo is the title line, with the parenthesized date annotation
	// appended as a second line when one was found.
	Titulo string `json:"titulo"`

	// Proposito is the "por la cual..." purpose span, best effort.
	Proposito string `json:"proposito"`

	// Descripcion is the body text with the title line removed.
	Descripcion string `json:"descripcion"`

	// FechaPublicacion is the issue publication date as YYYY-MM-DD, or "".
	FechaPublicacion string `json:"fecha_publicacion"`

	// Institucion is the resolved issuing institution, or the
	// UnknownInstitution sentinel.
	Institucion string `json:"institucion"`
}

// Span is a half-open [Start, End) byte range of the reflowed issue text
// believed to contain exactly one legal act.
type Span struct {
	Start int
	End   int
}

// TocEntry is one line captured from the table-of-contents region, tagged
// with the institution heading in effect when the line was read.
type TocEntry struct {
	Entity string `json:"entity"`
	Line   string `json:"line"`
}
