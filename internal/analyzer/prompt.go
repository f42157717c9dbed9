package analyzer

// maxPromptText caps how much document text is sent to the model.
const maxPromptText = 15000

const schemaInstructions = "You are a careful document analysis assistant. Return STRICT JSON only. No prose.\n" +
	"Tasks: (1) classify doc as contract, invoice, or report (2) find missing/partial required fields (3) recommend improvements.\n" +
	"Required fields by type: \n" +
	"- contract: party_1, party_2, signature, date, payment_terms\n" +
	"- invoice: invoice_number, amount, due_date, tax, bill_to, bill_from\n" +
	"Rules: \n" +
	"- type is one of: contract | invoice | report\n" +
	"- confidence: float between 0 and 1\n" +
	"- missing_fields: only include fields that are missing or partially present. For each: {name, status: 'missing'|'partial', details}\n" +
	"- recommendations: array of {text, priority: 'critical'|'optional', related_field}\n" +
	"Return JSON object with keys: type, confidence, missing_fields, recommendations."

// BuildPrompt assembles the classification prompt for a document.
func BuildPrompt(text string) string {
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}
	return schemaInstructions + "\n\nDocument Text:\n" + text
}
