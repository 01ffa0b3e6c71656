package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisorFallback(t *testing.T) {
	a := New(nil)

	tests := []struct {
		name      string
		text      string
		wantTopic string
	}{
		{name: "investment query", text: "what is a good investment strategy?", wantTopic: "investment"},
		{name: "budget query", text: "help me build a BUDGET", wantTopic: "50/30/20"},
		{name: "loan query", text: "can I afford this loan?", wantTopic: "loan calculations"},
		{name: "saving query", text: "how do I save more money", wantTopic: "Pay yourself first"},
		{name: "debt query", text: "drowning in debt, what now", wantTopic: "debt snowball"},
		{name: "retirement query", text: "planning for retirement at 30", wantTopic: "401(k)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Fallback(tt.text)
			assert.NotEmpty(t, got)
			assert.Contains(t, got, tt.wantTopic)
		})
	}
}

func TestAdvisorFallbackGenericEchoesQuery(t *testing.T) {
	a := New(nil)

	got := a.Fallback("what color should I paint my house")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "what color should I paint my house")
}

func TestAdvisorFallbackDeterministic(t *testing.T) {
	a := New(nil)

	first := a.Fallback("thinking about my retirement and my debt")
	second := a.Fallback("thinking about my retirement and my debt")
	assert.Equal(t, first, second)
}

func TestAdvisorFallbackPriorityOrder(t *testing.T) {
	a := New(nil)

	// "investment" precedes "retirement" in the table.
	got := a.Fallback("investment options for retirement")
	assert.Contains(t, got, "Diversify your portfolio")
}

func TestAdvisorFallbackNeverEmpty(t *testing.T) {
	a := New(nil)

	for _, text := range []string{"", " ", "??", "zzz"} {
		assert.NotEmpty(t, a.Fallback(text))
	}
}
