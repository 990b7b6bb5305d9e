package models

// EndingDocument is the root object of the generated endings file.
type EndingDocument struct {
	// Endings holds the records in input row order.
	Endings []EndingRecord `json:"Endings"`
}

// NewEndingDocument wraps records, never producing a null Endings array.
func NewEndingDocument(records []EndingRecord) *EndingDocument {
	if records == nil {
		records = []EndingRecord{}
	}
	return &EndingDocument{Endings: records}
}
