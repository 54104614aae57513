// Package service orchestrates the retrieval pipeline: corpus building,
// intent routing, retrieval-augmented generation and tool dispatch.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelassist/internal/domain"
	"travelassist/internal/logger"
	"travelassist/internal/router"
	"travelassist/internal/vectorstore/memory"
)

// Assistant answers free-text travel queries from a document corpus or by
// dispatching to live weather/flight sources. Per-query failures become
// user-visible messages; only startup configuration errors are fatal.
type Assistant struct {
	source    domain.DocumentSource
	chunker   domain.Chunker
	embedder  domain.Embedder
	completer domain.Completer
	weather   domain.WeatherLookup
	flights   domain.FlightLookup
	holder    *memory.Holder
	topK      int
}

// NewAssistant wires the pipeline components together. The weather and
// flight lookups may be nil, in which case those intents answer with a
// configuration message instead of calling an adapter.
func NewAssistant(
	source domain.DocumentSource,
	chunker domain.Chunker,
	embedder domain.Embedder,
	completer domain.Completer,
	weather domain.WeatherLookup,
	flights domain.FlightLookup,
	topK int,
) *Assistant {
	if topK <= 0 {
		topK = 4
	}
	return &Assistant{
		source:    source,
		chunker:   chunker,
		embedder:  embedder,
		completer: completer,
		weather:   weather,
		flights:   flights,
		holder:    memory.NewHolder(),
		topK:      topK,
	}
}

// Rebuild loads the corpus, chunks and embeds it, and atomically swaps in
// the new index snapshot. On any failure the previous snapshot, if one
// exists, stays servable; a half-built index is never published.
func (a *Assistant) Rebuild(ctx context.Context) error {
	documents, err := a.source.Load()
	if err != nil {
		return err
	}
	var chunks []domain.Chunk
	var texts []string
	for _, d := range documents {
		cs, err := a.chunker.Chunk(d)
		if err != nil {
			return fmt.Errorf("chunking %s: %w", d.Path, err)
		}
		for _, ch := range cs {
			chunks = append(chunks, ch)
			texts = append(texts, ch.Text)
		}
	}
	if len(chunks) == 0 {
		return fmt.Errorf("%w: documents contained no text", domain.ErrEmptyCorpus)
	}
	logger.Info("embedding %d chunks from %d documents", len(chunks), len(documents))
	vectors, err := a.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return err
	}
	index, err := memory.Build(chunks, vectors)
	if err != nil {
		return err
	}
	a.holder.Swap(index)
	logger.Info("index ready: %d chunks, dimension %d", index.Len(), index.Dimension())
	return nil
}

// Answer classifies the query, routes it, and returns a single answer.
// It never returns an error: failures are rendered as explanatory text.
func (a *Assistant) Answer(ctx context.Context, query string) domain.Answer {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Answer{Query: query, Text: "Please type a question first."}
	}
	c := router.Classify(query)
	logger.Debug("intent=%s city=%q origin=%q destination=%q missing=%t",
		c.Intent, c.City, c.Origin, c.Destination, c.MissingParams)

	var text string
	switch c.Intent {
	case domain.IntentWeather:
		text = a.answerWeather(ctx, c)
	case domain.IntentFlight:
		text = a.answerFlight(ctx, c)
	default:
		text = a.answerFromDocuments(ctx, query)
	}
	return domain.Answer{Query: query, Text: text}
}

func (a *Assistant) answerFromDocuments(ctx context.Context, query string) string {
	index, err := a.holder.Current()
	if err != nil {
		return userMessage(err)
	}
	vec, err := a.embedder.Embed(ctx, query)
	if err != nil {
		return userMessage(err)
	}
	results, err := index.Query(vec, a.topK)
	if err != nil {
		return userMessage(err)
	}
	answer, err := a.completer.Complete(ctx, buildPrompt(query, results))
	if err != nil {
		return userMessage(err)
	}
	return answer
}

func (a *Assistant) answerWeather(ctx context.Context, c domain.Classification) string {
	if c.MissingParams {
		return "Which city would you like the weather for? Try \"weather in Paris\"."
	}
	if a.weather == nil {
		return userMessage(domain.ErrMissingCredential)
	}
	report, err := a.weather.Lookup(ctx, c.City)
	if err != nil {
		return userMessage(err)
	}
	return fmt.Sprintf("Current weather in %s: %s, %.1f°C.", report.City, report.Description, report.TempC)
}

func (a *Assistant) answerFlight(ctx context.Context, c domain.Classification) string {
	if c.MissingParams {
		return "Please tell me the route, for example \"flights from NYC to London\"."
	}
	if a.flights == nil {
		return userMessage(domain.ErrMissingCredential)
	}
	fq := domain.FlightQuery{
		Origin:      c.Origin,
		Destination: c.Destination,
		Date:        time.Now().Format("2006-01-02"),
	}
	f, err := a.flights.Search(ctx, fq)
	if err != nil {
		return userMessage(err)
	}
	return fmt.Sprintf("First flight from %s to %s: %s departing %s at %s, arriving %s.",
		c.Origin, c.Destination, f.Number, f.Departure, f.ScheduledAt, f.Arrival)
}

// buildPrompt composes the retrieved chunk texts and the query into a
// generation request for the completion service.
func buildPrompt(query string, results []domain.SearchResult) string {
	var b strings.Builder
	b.WriteString("Answer the question using only the context below.\n")
	b.WriteString("If the context does not contain the answer, say so.\n\nContext:\n")
	for _, r := range results {
		b.WriteString("- ")
		b.WriteString(r.Chunk.Text)
		b.WriteString("\n")
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	return b.String()
}

// userMessage converts a pipeline error into the single user-visible
// message for this query.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Sorry, that information is not available."
	case errors.Is(err, domain.ErrMissingCredential):
		return "This lookup is not configured: a required API key is missing."
	case errors.Is(err, domain.ErrIndexNotReady):
		return "The travel documents are still being indexed. Please try again shortly."
	case errors.Is(err, domain.ErrEmptyCorpus):
		return "No travel documents are loaded, so I cannot answer from the brochures."
	case errors.Is(err, domain.ErrEmbeddingUnavailable),
		errors.Is(err, domain.ErrGenerationUnavailable),
		errors.Is(err, domain.ErrServiceUnavailable):
		return "The lookup failed because an upstream service is unavailable. Please try again."
	case errors.Is(err, domain.ErrMissingParameters):
		return "I need a bit more detail to answer that."
	default:
		return "Something went wrong answering that: " + err.Error()
	}
}
