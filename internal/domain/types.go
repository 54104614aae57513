package domain

// Page is a single page of text extracted from a source file.
type Page struct {
	Number int
	Text   string
}

// Document represents one source file loaded into the system.
type Document struct {
	ID    string
	Path  string
	Pages []Page
}

// Content returns the full document text with page boundaries joined by newlines.
func (d Document) Content() string {
	switch len(d.Pages) {
	case 0:
		return ""
	case 1:
		return d.Pages[0].Text
	}
	n := 0
	for _, p := range d.Pages {
		n += len(p.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, p := range d.Pages {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, p.Text...)
	}
	return string(buf)
}

// Chunk is a bounded segment of a document used as the unit of retrieval.
type Chunk struct {
	DocumentID string
	ChunkID    string
	Text       string
	Index      int
}

// SearchResult is a matching chunk with a relevance score.
type SearchResult struct {
	Chunk Chunk
	Score float32
}

// Intent is the classified purpose of a user query.
type Intent string

const (
	IntentDocumentQA Intent = "document-qa"
	IntentWeather    Intent = "weather"
	IntentFlight     Intent = "flight"
)

// Classification is the result of routing a query, including any
// parameters extracted for tool intents.
type Classification struct {
	Intent        Intent
	City          string
	Origin        string
	Destination   string
	MissingParams bool
}

// Answer pairs a query with its final response text.
type Answer struct {
	Query string
	Text  string
}
