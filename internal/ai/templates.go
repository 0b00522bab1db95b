package ai

import (
	"context"
	"fmt"
	"strings"
)

// DraftShippingEmail generates a customer notification draft for a ready-to-
// ship timber order, with bracketed placeholders the dispatcher fills in.
func (a *Agent) DraftShippingEmail(ctx context.Context) (string, error) {
	const prompt = `Generate a polite and professional email draft for notifying a customer that their timber order is ready for shipping. Include placeholders like [Customer Name], [Order Number], and [Expected Delivery Date/Time]. The response should only contain the email draft text.`
	text, err := a.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to draft shipping email: %w", err)
	}
	return text, nil
}

// WaybillChecklist asks for 3-5 dispatch checkpoints and parses the bulleted
// response into its items.
func (a *Agent) WaybillChecklist(ctx context.Context) ([]string, error) {
	const prompt = `Provide a list of 3-5 key checkpoints for an admin to verify on a timber transport waybill before dispatch. Each point should start with '- '. The response should only contain this list.`
	text, err := a.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate waybill checklist: %w", err)
	}

	var points []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "- ") {
			points = append(points, strings.TrimSpace(line[2:]))
		}
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no checklist points in model response (raw: %q)", Truncate(text, 100))
	}
	return points, nil
}

// DraftCommissionInvoice generates an invoice body for the platform's
// commission on a confirmed match.
func (a *Agent) DraftCommissionInvoice(ctx context.Context, demandSummary, stockSummary, commission string) (string, error) {
	prompt := fmt.Sprintf(`Generate a short, formal invoice draft for a timber marketplace commission.
The platform brokered the following deal and invoices the manufacturer for its commission.
Demand: %s
Stock: %s
Commission amount: %s EUR
Include placeholders like [Invoice Number] and [Due Date]. The response should only contain the invoice text.`, demandSummary, stockSummary, commission)
	text, err := a.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to draft commission invoice: %w", err)
	}
	return text, nil
}
