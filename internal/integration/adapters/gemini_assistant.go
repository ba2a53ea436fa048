// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/application/usecase/report"
)

const (
	geminiModel  = "gemini-2.0-flash-001"
	maxToolTurns = 4
)

// geminiAssistant implements adapter.AssistantService on the Gemini API with
// function calling against the store's inventory and sales data.
type geminiAssistant struct {
	apiKey      string
	productRepo adapter.ProductRepository
	dailySales  *report.DailySalesUseCase
}

// NewGeminiAssistant creates a new Gemini-backed assistant instance.
func NewGeminiAssistant(apiKey string, productRepo adapter.ProductRepository, dailySales *report.DailySalesUseCase) adapter.AssistantService {
	return &geminiAssistant{
		apiKey:      apiKey,
		productRepo: productRepo,
		dailySales:  dailySales,
	}
}

// Ask sends the question to the model and resolves tool calls until the
// model produces a text answer.
func (a *geminiAssistant) Ask(ctx context.Context, question string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full product list with name, price, stock quantity, barcode and category. Use this for ANY question about products, prices or stock.",
				},
				{
					Name:        "get_daily_sales_report",
					Description: "Get the sales report for one day: total, paid and pay-later amounts, per-product sales and buyer names.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"date": {Type: genai.TypeString, Description: "Report date (YYYY-MM-DD)"},
						},
						Required: []string{"date"},
					},
				},
			},
		},
	}

	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the store assistant of a campus snack kiosk.

RULES:
1. For questions about a product's PRICE, STOCK or DETAILS, call 'check_inventory' and read the answer from the returned JSON.
2. For questions about sales or revenue, call 'get_daily_sales_report' with the date the user means. "Today" is %s.
3. Answer briefly, in plain language, with concrete numbers.

USER: %s`, today, today, question)

	session := model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	// Resolve tool calls until the model answers in text. The turn cap stops
	// a model that keeps asking for tools.
	for turn := 0; turn < maxToolTurns; turn++ {
		funcCall, ok := firstFunctionCall(resp)
		if !ok {
			return textOf(resp), nil
		}

		toolResp, err := a.dispatch(ctx, funcCall)
		if err != nil {
			slog.Warn("Assistant tool call failed", "tool", funcCall.Name, "error", err)
			toolResp = genai.FunctionResponse{
				Name:     funcCall.Name,
				Response: map[string]interface{}{"error": err.Error()},
			}
		}

		resp, err = session.SendMessage(ctx, toolResp)
		if err != nil {
			return "", fmt.Errorf("gemini request failed: %w", err)
		}
	}

	return textOf(resp), nil
}

// dispatch executes one tool call against the store data.
func (a *geminiAssistant) dispatch(ctx context.Context, funcCall genai.FunctionCall) (genai.FunctionResponse, error) {
	switch funcCall.Name {
	case "check_inventory":
		return a.checkInventory(ctx)
	case "get_daily_sales_report":
		date, _ := funcCall.Args["date"].(string)
		return a.salesReport(ctx, date)
	default:
		return genai.FunctionResponse{}, fmt.Errorf("unknown tool: %s", funcCall.Name)
	}
}

func (a *geminiAssistant) checkInventory(ctx context.Context) (genai.FunctionResponse, error) {
	products, err := a.productRepo.FindAll(ctx)
	if err != nil {
		return genai.FunctionResponse{}, err
	}

	type inventoryItem struct {
		Name     string `json:"name"`
		Price    string `json:"price"`
		Stock    int    `json:"stock"`
		Barcode  string `json:"barcode"`
		Category string `json:"category"`
	}
	items := make([]inventoryItem, len(products))
	for i, p := range products {
		items[i] = inventoryItem{
			Name:     p.Name,
			Price:    p.Price.String(),
			Stock:    p.Quantity,
			Barcode:  p.Barcode,
			Category: string(p.Category),
		}
	}

	jsonBytes, err := json.Marshal(items)
	if err != nil {
		return genai.FunctionResponse{}, err
	}
	return genai.FunctionResponse{
		Name:     "check_inventory",
		Response: map[string]interface{}{"inventory": string(jsonBytes)},
	}, nil
}

func (a *geminiAssistant) salesReport(ctx context.Context, date string) (genai.FunctionResponse, error) {
	out, err := a.dailySales.Execute(ctx, report.DailySalesInput{Date: date})
	if err != nil {
		return genai.FunctionResponse{}, err
	}
	r := out.Report

	jsonBytes, err := json.Marshal(r.Products)
	if err != nil {
		return genai.FunctionResponse{}, err
	}
	return genai.FunctionResponse{
		Name: "get_daily_sales_report",
		Response: map[string]interface{}{
			"date":            r.Date,
			"total_sales":     r.TotalSales.String(),
			"paid_sales":      r.PaidSales.String(),
			"pay_later_sales": r.PayLaterSales.String(),
			"products":        string(jsonBytes),
			"buyers":          r.Buyers,
		},
	}, nil
}

func firstFunctionCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return genai.FunctionCall{}, false
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			return funcCall, true
		}
	}
	return genai.FunctionCall{}, false
}

func textOf(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "I could not produce an answer."
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
