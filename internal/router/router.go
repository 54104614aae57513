// Package router classifies free-text queries into intents and extracts
// the parameters tool intents need. It is a deterministic pattern matcher,
// not a language-understanding system: its contract is that the same query
// always yields the same classification.
package router

import (
	"regexp"
	"strings"

	"travelassist/internal/domain"
)

var (
	weatherMarkers = []string{"weather", "temperature", "forecast"}
	flightMarkers  = []string{"flight", "flights", "fly"}

	wordRe  = regexp.MustCompile(`\p{L}+`)
	routeRe = regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+)$`)
	cityRe  = regexp.MustCompile(`(?i)^.*\bin\s+(.+)$`)
)

// Classify routes a query to an intent. Queries carrying a flight marker
// whose route cannot be parsed stay flight intent with MissingParams set;
// they never fall through to document QA.
func Classify(query string) domain.Classification {
	words := tokenSet(query)

	if hasAny(words, flightMarkers) {
		origin, dest := extractRoute(query)
		return domain.Classification{
			Intent:        domain.IntentFlight,
			Origin:        origin,
			Destination:   dest,
			MissingParams: origin == "" || dest == "",
		}
	}
	if hasAny(words, weatherMarkers) {
		city := extractCity(query)
		return domain.Classification{
			Intent:        domain.IntentWeather,
			City:          city,
			MissingParams: city == "",
		}
	}
	return domain.Classification{Intent: domain.IntentDocumentQA}
}

func tokenSet(s string) map[string]struct{} {
	tokens := wordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func hasAny(words map[string]struct{}, markers []string) bool {
	for _, marker := range markers {
		if _, ok := words[marker]; ok {
			return true
		}
	}
	return false
}

// extractCity returns the substring following the last "in" marker.
func extractCity(query string) string {
	m := cityRe.FindStringSubmatch(query)
	if m == nil {
		return ""
	}
	return trimParam(m[1])
}

// extractRoute parses the two-part "from X to Y" separator pattern.
func extractRoute(query string) (origin, destination string) {
	m := routeRe.FindStringSubmatch(query)
	if m == nil {
		return "", ""
	}
	return trimParam(m[1]), trimParam(m[2])
}

func trimParam(s string) string {
	return strings.Trim(strings.TrimSpace(s), ".,!?;:")
}
