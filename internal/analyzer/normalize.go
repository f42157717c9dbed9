package analyzer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MissingField describes a required field the model found missing or
// only partially present.
type MissingField struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Details string `json:"details"`
}

// Recommendation is one improvement suggested by the model.
type Recommendation struct {
	Text         string `json:"text"`
	Priority     string `json:"priority"`
	RelatedField string `json:"related_field"`
}

// Result is the structured classification of one document. It is typed
// only at this collaborator boundary; the registry stores it as an
// opaque JSON string.
type Result struct {
	Type            string           `json:"type"`
	Confidence      float64          `json:"confidence"`
	MissingFields   []MissingField   `json:"missing_fields"`
	Recommendations []Recommendation `json:"recommendations"`
}

var allowedTypes = map[string]struct{}{
	"contract": {},
	"invoice":  {},
	"report":   {},
}

// ParseResult parses raw model output into a Result. Code fences are
// stripped first since models wrap JSON in them despite instructions.
func ParseResult(raw string) (Result, bool) {
	cleaned := stripCodeFences(raw)

	// Confidence sometimes arrives as a string; decode it loosely and
	// coerce during normalization.
	var loose struct {
		Type            string           `json:"type"`
		Confidence      any              `json:"confidence"`
		MissingFields   []MissingField   `json:"missing_fields"`
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(cleaned), &loose); err != nil {
		return Result{}, false
	}

	return Result{
		Type:            loose.Type,
		Confidence:      coerceConfidence(loose.Confidence),
		MissingFields:   loose.MissingFields,
		Recommendations: loose.Recommendations,
	}, true
}

// Normalize enforces the schema invariants: type falls back to report,
// confidence is clamped to [0,1], and slices are never nil.
func Normalize(res Result) Result {
	if _, ok := allowedTypes[res.Type]; !ok {
		res.Type = "report"
	}
	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	if res.MissingFields == nil {
		res.MissingFields = []MissingField{}
	}
	if res.Recommendations == nil {
		res.Recommendations = []Recommendation{}
	}
	return res
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.Trim(cleaned, "`")
	cleaned = strings.TrimPrefix(cleaned, "json")
	return strings.TrimSpace(cleaned)
}

func coerceConfidence(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return parsed
		}
	}
	return 0
}
