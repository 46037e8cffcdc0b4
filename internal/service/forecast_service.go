package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/vineethtatipatri19/PGVMS/internal/dto"
	"github.com/vineethtatipatri19/PGVMS/internal/model"
	"github.com/vineethtatipatri19/PGVMS/internal/repository"
)

// ChatCompleter is the slice of the OpenAI client the forecaster uses.
// *openai.Client satisfies it; tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ForecastService delegates demand prediction to the external model.
// Single attempt per request: a failure or unparseable reply is wrapped into
// one descriptive error and surfaced to the caller — no retry, no partial
// result.
type ForecastService interface {
	Forecast(ctx context.Context, req dto.ForecastRequest) (*dto.ForecastResponse, error)
}

type forecastService struct {
	client ChatCompleter
	txRepo repository.TransactionRepository
}

func NewForecastService(client ChatCompleter, txRepo repository.TransactionRepository) ForecastService {
	return &forecastService{client: client, txRepo: txRepo}
}

// historicalRow is one (date, item, quantity sold) observation fed to the
// model, derived from the sale lines of the transaction ledger.
type historicalRow struct {
	Date     string `json:"date"`
	ItemName string `json:"itemName"`
	SoldQty  string `json:"soldQty"`
}

func (s *forecastService) Forecast(ctx context.Context, req dto.ForecastRequest) (*dto.ForecastResponse, error) {
	history, err := s.salesHistory(ctx)
	if err != nil {
		return nil, err
	}

	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("forecast: marshal history: %w", err)
	}

	prompt := fmt.Sprintf(`You are a demand forecasting expert for a perishable goods business in India.
Analyze the following historical sales data, weather conditions, and seasonality to predict demand for the given items.
Provide a justification for each prediction.

Historical Sales Data:
%s

Current Conditions:
- Weather: %s
- Season: %s

Items to Forecast:
%s

Respond ONLY with a JSON array where each element has the shape
{"item_name": string, "predicted_demand": number, "unit": string, "justification": string}.`,
		string(historyJSON), req.Weather, req.Season, strings.Join(req.Items, ", "))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		log.Error().Err(err).Msg("demand forecast request failed")
		return nil, fmt.Errorf("failed to generate demand forecast: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("failed to generate demand forecast: empty response")
	}

	rows, err := parseForecastRows(resp.Choices[0].Message.Content)
	if err != nil {
		log.Warn().Err(err).Msg("unparseable forecast response")
		return nil, fmt.Errorf("failed to generate demand forecast: %w", err)
	}
	return &dto.ForecastResponse{Rows: rows}, nil
}

// salesHistory flattens the sale lines into forecast observations. Payments
// carry no items and are skipped.
func (s *forecastService) salesHistory(ctx context.Context) ([]historicalRow, error) {
	txs, err := s.txRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]historicalRow, 0, len(txs))
	for _, tx := range txs {
		if tx.Kind != model.KindSale {
			continue
		}
		for _, line := range tx.Lines {
			rows = append(rows, historicalRow{
				Date:     tx.Date.Format(dayLayout),
				ItemName: line.ItemName,
				SoldQty:  line.Quantity.String(),
			})
		}
	}
	return rows, nil
}

// parseForecastRows tolerates the model wrapping its JSON in markdown fences.
func parseForecastRows(content string) ([]dto.ForecastRow, error) {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	var rows []dto.ForecastRow
	if err := json.Unmarshal([]byte(cleaned), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
