package classification

import (
	"regexp"

	"github.com/harperdean/pocketwise/internal/model"
)

// Presence patterns for financial information in free text.
var (
	amountPattern     = regexp.MustCompile(`\$?\d+(?:,\d{3})*(?:\.\d{2})?`)
	percentagePattern = regexp.MustCompile(`\d+(?:\.\d+)?%`)
	datePattern       = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// Validate reports which financial patterns are present in the text. Each
// flag is an independent presence test; Validate is a pure function and
// never fails.
func Validate(text string) model.ValidationFlags {
	return model.ValidationFlags{
		HasAmount:     amountPattern.MatchString(text),
		HasPercentage: percentagePattern.MatchString(text),
		HasDate:       datePattern.MatchString(text),
	}
}
