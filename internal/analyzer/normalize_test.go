package analyzer

import "testing"

func TestParseResultStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"type\":\"invoice\",\"confidence\":0.8,\"missing_fields\":[],\"recommendations\":[]}\n```"

	result, ok := ParseResult(raw)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if result.Type != "invoice" || result.Confidence != 0.8 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestParseResultCoercesStringConfidence(t *testing.T) {
	result, ok := ParseResult(`{"type":"contract","confidence":"0.75"}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if result.Confidence != 0.75 {
		t.Fatalf("expected confidence 0.75, got %v", result.Confidence)
	}

	result, ok = ParseResult(`{"type":"contract","confidence":"high"}`)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if result.Confidence != 0 {
		t.Fatalf("expected unusable confidence to coerce to 0, got %v", result.Confidence)
	}
}

func TestParseResultRejectsNonJSON(t *testing.T) {
	for _, raw := range []string{"", "I cannot classify this document.", "{broken"} {
		if _, ok := ParseResult(raw); ok {
			t.Fatalf("expected parse failure for %q", raw)
		}
	}
}

func TestNormalizeFallsBackToReport(t *testing.T) {
	for _, typ := range []string{"memo", "RESUME", ""} {
		res := Normalize(Result{Type: typ, Confidence: 0.5})
		if res.Type != "report" {
			t.Fatalf("expected fallback to report for %q, got %q", typ, res.Type)
		}
	}
	for _, typ := range []string{"contract", "invoice", "report"} {
		res := Normalize(Result{Type: typ, Confidence: 0.5})
		if res.Type != typ {
			t.Fatalf("expected %q preserved, got %q", typ, res.Type)
		}
	}
}

func TestNormalizeClampsConfidence(t *testing.T) {
	if res := Normalize(Result{Type: "report", Confidence: 1.7}); res.Confidence != 1 {
		t.Fatalf("expected clamp to 1, got %v", res.Confidence)
	}
	if res := Normalize(Result{Type: "report", Confidence: -0.2}); res.Confidence != 0 {
		t.Fatalf("expected clamp to 0, got %v", res.Confidence)
	}
}

func TestNormalizeFillsNilSlices(t *testing.T) {
	res := Normalize(Result{Type: "report"})
	if res.MissingFields == nil || res.Recommendations == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
	if len(res.MissingFields) != 0 || len(res.Recommendations) != 0 {
		t.Fatalf("expected empty slices, got %+v", res)
	}
}
