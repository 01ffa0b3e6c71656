// Package advisor provides the deterministic keyword-driven advice table
// used when no generative signal is available. It is the last-resort text
// source and is total: it always returns non-empty advice.
package advisor

import (
	"fmt"
	"strings"
)

// TopicResponse pairs a trigger keyword with its canned response. Earlier
// entries take priority.
type TopicResponse struct {
	Topic    string
	Response string
}

// Advisor matches queries against an ordered topic table.
type Advisor struct {
	table []TopicResponse
}

// New creates an advisor with the given topic table. Passing nil uses the
// default table.
func New(table []TopicResponse) *Advisor {
	if table == nil {
		table = DefaultResponses()
	}
	return &Advisor{table: table}
}

// Fallback returns the canned response for the first topic keyword found in
// the lower-cased text. When no topic matches it returns a generic response
// that echoes the query and suggests topics. The result is never empty.
func (a *Advisor) Fallback(text string) string {
	textLower := strings.ToLower(text)

	for _, entry := range a.table {
		if strings.Contains(textLower, entry.Topic) {
			return entry.Response
		}
	}

	return fmt.Sprintf("I understand you're asking about: '%s'. While I'd love to provide personalized financial advice, I recommend consulting with a qualified financial advisor for your specific situation. However, I can help with general questions about budgeting, saving, investing basics, and financial calculations. What specific area would you like to explore?", text)
}
