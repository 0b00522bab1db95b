// Package ai wraps the OpenAI Responses API behind the small surface the
// marketplace needs: structured matchmaking and load planning, plus free-text
// drafting for logistics templates.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	"pohi-platform/internal/core"
)

// maxStockInPrompt caps the inventory context handed to the model; beyond
// this the prompt cost grows without improving pairing quality.
const maxStockInPrompt = 30

type SuggestionService interface {
	// SuggestMatches proposes demand/stock pairings. Only Received demands
	// and Available stock should be passed in.
	SuggestMatches(ctx context.Context, demands []core.DemandItem, stock []core.StockItem) ([]core.MatchmakingSuggestion, error)

	// SuggestLoadingPlan proposes how to load the given confirmed deliveries
	// onto one truck, including drop-off ordering and a simulated route.
	SuggestLoadingPlan(ctx context.Context, deliveries []core.ConfirmedMatch, capacityM3 float64) (*core.LoadingPlan, error)

	// GenerateText runs a plain prompt and returns the model's text output.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// suggestionList exists because strict structured output requires an object
// at the schema root, not a bare array.
type suggestionList struct {
	Suggestions []core.MatchmakingSuggestion `json:"suggestions"`
}

func (a *Agent) SuggestMatches(ctx context.Context, demands []core.DemandItem, stock []core.StockItem) ([]core.MatchmakingSuggestion, error) {
	if len(demands) == 0 || len(stock) == 0 {
		return nil, nil
	}
	if len(stock) > maxStockInPrompt {
		stock = stock[:maxStockInPrompt]
	}

	demandsJSON, err := json.Marshal(demands)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal demands: %w", err)
	}
	stockJSON, err := json.Marshal(stock)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock: %w", err)
	}

	prompt := fmt.Sprintf(`You are a timber trade broker for a Hungarian marketplace.
Your goal is to pair customer demands with manufacturer stock.
Rules:
1. Reference ONLY ids that appear in the lists below.
2. Compare diameter range, length, quantity, calculated volume and any notes.
3. Only propose pairings with genuine commercial merit; an empty list is a valid answer.
4. Give each pairing a one-sentence reason, a qualitative strength (High, Medium or Low) and a similarity score between 0.0 and 1.0.
5. Generate a fresh unique id for each suggestion.

Customer demands:
%s

Manufacturer stock:
%s`, demandsJSON, stockJSON)

	var out suggestionList
	if err := a.structured(ctx, prompt, "matchmaking_suggestions", "AI-proposed pairings of timber demands with available stock", &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

func (a *Agent) SuggestLoadingPlan(ctx context.Context, deliveries []core.ConfirmedMatch, capacityM3 float64) (*core.LoadingPlan, error) {
	if len(deliveries) == 0 {
		return nil, fmt.Errorf("no confirmed deliveries to plan")
	}

	deliveriesJSON, err := json.Marshal(deliveries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deliveries: %w", err)
	}

	prompt := fmt.Sprintf(`You are a logistics planner for a timber haulage company.
Plan how to load the confirmed deliveries below onto a single truck with a capacity of %.0f m³.
Rules:
1. Later drop-offs load first, against the cab; the first stop unloads from the door.
2. Give every item a drop_off_order starting at 1 for the first drop-off.
3. Estimate volume and weight per item from the delivery data; use plain numeric text like "8".
4. List route waypoints starting with the pickup, then drop-offs in delivery order.
5. Summarise capacity utilisation as a percentage.

Confirmed deliveries:
%s`, capacityM3, deliveriesJSON)

	var plan core.LoadingPlan
	if err := a.structured(ctx, prompt, "truck_loading_plan", "A loading and routing plan for one truck of timber deliveries", &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (a *Agent) GenerateText(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
	}
	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}
	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

// structured runs a prompt with strict JSON-schema output reflected from v's
// type and decodes the response into v.
func (a *Agent) structured(ctx context.Context, prompt, name, description string, v any) error {
	schemaMap, err := generateSchema(v)
	if err != nil {
		return err
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        name,
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt(description),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return fmt.Errorf("empty response content")
	}
	if err := DecodeLenient(content, v); err != nil {
		return err
	}
	return nil
}

func generateSchema(v any) (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return schemaMap, nil
}
