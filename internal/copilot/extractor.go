package copilot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/hucha-finance/hucha/internal/money"
)

const extractionPrompt = "You are a document parser for personal finance paperwork: bills, " +
	"invoices, loan statements and payment reminders.\n\n" +
	"Task:\n" +
	"- Read the attached document and extract the single payment obligation it describes.\n" +
	"- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n" +
	"- Output a single JSON object.\n\n" +
	"The object must have these fields:\n" +
	"- \"title\": string, short name for the obligation (issuer plus concept)\n" +
	"- \"amount\": number, the amount due\n" +
	"- \"due_date\": string, ISO format \"YYYY-MM-DD\", or null if absent\n" +
	"- \"category\": string, a short expense category\n" +
	"- \"minimum_payment\": number or null, the minimum payment when the document states one\n" +
	"- \"monthly_payment\": number or null, the recurring installment when the document states one\n" +
	"- \"total_installments\": integer or null, total installment count when stated\n" +
	"- \"suggest_create_debt\": boolean, true when the document describes an installment plan or loan\n\n" +
	"Rules:\n" +
	"- Amounts are plain numbers without currency symbols or thousands separators.\n" +
	"- When several amounts appear, \"amount\" is the total currently due.\n" +
	"- Return ONLY valid raw JSON.\n" +
	"- Do NOT wrap the response in code fences.\n" +
	"- Do NOT use ```json or any Markdown.\n" +
	"- Output must begin with \"{\" and end with \"}\".\n"

// Extractor reads documents with a Gemini model. It satisfies
// DocumentReader.
type Extractor struct {
	client *genai.Client
	model  string
}

func NewExtractor(ctx context.Context, model string) (*Extractor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Extractor{client: client, model: model}, nil
}

func (e *Extractor) Extract(ctx context.Context, data []byte, mimeType string) (*Extraction, error) {
	parts := []*genai.Part{{Text: extractionPrompt}}

	// Plain text rides in the prompt itself; binary formats go inline.
	if strings.HasPrefix(mimeType, "text/") {
		parts = append(parts, &genai.Part{Text: string(data)})
	} else {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mimeType, Data: data},
		})
	}

	contents := []*genai.Content{{Role: "user", Parts: parts}}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generating extraction: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	extraction, err := parseExtraction(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing model response: %w", err)
	}

	return extraction, nil
}

// parseExtraction turns raw model output into an Extraction. The amount
// must be a usable number; every other field degrades to its zero value
// rather than failing the upload.
func parseExtraction(raw string) (*Extraction, error) {
	clean := cleanModelJSON(raw)

	dec := json.NewDecoder(bytes.NewReader([]byte(clean)))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("unmarshaling extraction: %w", err)
	}

	amount, err := money.Parse(fields["amount"])
	if err != nil {
		return nil, fmt.Errorf("reading amount: %w", err)
	}

	return &Extraction{
		Title:             stringField(fields, "title"),
		Amount:            amount,
		DueDate:           stringField(fields, "due_date"),
		Category:          stringField(fields, "category"),
		MinimumPayment:    money.ParseOrZero(fields["minimum_payment"]),
		MonthlyPayment:    money.ParseOrZero(fields["monthly_payment"]),
		TotalInstallments: intField(fields, "total_installments"),
		SuggestCreateDebt: boolField(fields, "suggest_create_debt"),
	}, nil
}

// cleanModelJSON strips the Markdown fences and surrounding prose a
// model sometimes adds despite instructions, keeping the outermost JSON
// object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

func stringField(fields map[string]any, key string) string {
	v, ok := fields[key].(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(v)
}

func intField(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0
		}
		return n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func boolField(fields map[string]any, key string) bool {
	v, ok := fields[key].(bool)
	return ok && v
}
