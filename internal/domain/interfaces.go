package domain

import "context"

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(document Document) ([]Chunk, error)
}

// Embedder converts free text into fixed-dimensionality vectors.
type Embedder interface {
	Dimension() int
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer generates an answer from a fully assembled prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// WeatherReport is the structured result of a weather lookup.
type WeatherReport struct {
	City        string
	Description string
	TempC       float64
}

// WeatherLookup resolves current conditions for a city.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (WeatherReport, error)
}

// FlightQuery identifies a route on a given date (YYYY-MM-DD).
type FlightQuery struct {
	Origin      string
	Destination string
	Date        string
}

// Flight is the first matching flight for a query.
type Flight struct {
	Number      string
	Departure   string
	Arrival     string
	ScheduledAt string
}

// FlightLookup finds scheduled flights for a route.
type FlightLookup interface {
	Search(ctx context.Context, q FlightQuery) (Flight, error)
}

// DocumentSource enumerates the documents of a corpus.
type DocumentSource interface {
	Load() ([]Document, error)
}
