package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperdean/pocketwise/internal/model"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.ValidationFlags
	}{
		{
			name: "amount only",
			text: "I spent $45.99 yesterday",
			want: model.ValidationFlags{HasAmount: true},
		},
		{
			name: "percentage only",
			text: "rates dropped by 0.5%",
			want: model.ValidationFlags{HasAmount: true, HasPercentage: true},
		},
		{
			name: "date with slashes",
			text: "due on 12/31/2025",
			want: model.ValidationFlags{HasAmount: true, HasDate: true},
		},
		{
			name: "date with dashes",
			text: "payment posted 3-15-24",
			want: model.ValidationFlags{HasAmount: true, HasDate: true},
		},
		{
			name: "all three flags",
			text: "pay $1,200.00 at 4.5% by 01/01/2026",
			want: model.ValidationFlags{HasAmount: true, HasPercentage: true, HasDate: true},
		},
		{
			name: "plain text sets nothing",
			text: "how do I start budgeting?",
			want: model.ValidationFlags{},
		},
		{
			name: "empty text sets nothing",
			text: "",
			want: model.ValidationFlags{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.text))
		})
	}
}
