package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/sozercan/schema-helper/apimodels"
)

// FenceMarker opens a markdown JSON code block.
const FenceMarker = "```json"

// Outcome is either Structured or RawText.
type Outcome interface {
	isOutcome()
}

// Structured is a response that decoded into the requested shape.
type Structured struct {
	Result apimodels.AnalysisResult
}

// RawText is a response that came back as a markdown JSON block instead of
// a bare object. It is shown as-is.
type RawText struct {
	Text string
}

func (Structured) isOutcome() {}
func (RawText) isOutcome()    {}

func decodeOutcome(text string) (Outcome, error) {
	if strings.HasPrefix(strings.TrimSpace(text), FenceMarker) {
		return RawText{Text: text}, nil
	}

	if gjson.Get(text, "schema_title").Type != gjson.String ||
		!gjson.Get(text, "fields").IsArray() {
		return nil, fmt.Errorf("%w: expected an object with schema_title and fields", ErrMalformedResponse)
	}

	var result apimodels.AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return Structured{Result: result}, nil
}
