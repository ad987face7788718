package knowledge

// Document is one knowledge-base entry about the company. Documents are
// written by the offline ingestion job; this service only reads them.
type Document struct {
	ID      string
	Title   string
	Content string
}
