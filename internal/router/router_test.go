package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"travelassist/internal/domain"
)

func TestClassifyWeather(t *testing.T) {
	c := Classify("What's the weather in Paris?")
	assert.Equal(t, domain.IntentWeather, c.Intent)
	assert.Equal(t, "Paris", c.City)
	assert.False(t, c.MissingParams)
}

func TestClassifyWeatherVariants(t *testing.T) {
	cases := []struct {
		query string
		city  string
	}{
		{"temperature in New York", "New York"},
		{"forecast in Tokyo!", "Tokyo"},
		{"WEATHER IN berlin", "berlin"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c := Classify(tc.query)
			assert.Equal(t, domain.IntentWeather, c.Intent)
			assert.Equal(t, tc.city, c.City)
			assert.False(t, c.MissingParams)
		})
	}
}

func TestClassifyWeatherMissingCity(t *testing.T) {
	c := Classify("how is the weather today")
	assert.Equal(t, domain.IntentWeather, c.Intent)
	assert.True(t, c.MissingParams)
}

func TestClassifyFlight(t *testing.T) {
	c := Classify("flights from NYC to London")
	assert.Equal(t, domain.IntentFlight, c.Intent)
	assert.Equal(t, "NYC", c.Origin)
	assert.Equal(t, "London", c.Destination)
	assert.False(t, c.MissingParams)
}

func TestClassifyFlightMissingParams(t *testing.T) {
	// a flight marker without a parseable route must stay flight intent,
	// flagged, never falling through to document QA
	c := Classify("show me flight options")
	assert.Equal(t, domain.IntentFlight, c.Intent)
	assert.True(t, c.MissingParams)
}

func TestClassifyDocumentQA(t *testing.T) {
	c := Classify("Best tourist spots in Paris")
	assert.Equal(t, domain.IntentDocumentQA, c.Intent)
}

func TestClassifyDeterministic(t *testing.T) {
	q := "fly from Oslo to Rome"
	assert.Equal(t, Classify(q), Classify(q))
}

func TestClassifyMarkerInsideWordIgnored(t *testing.T) {
	// marker words are matched on word boundaries only
	c := Classify("tell me about flyers and the Dublin opera house")
	assert.Equal(t, domain.IntentDocumentQA, c.Intent)
}
