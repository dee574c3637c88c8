package nlu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/adapter/ai/openai"
	"github.com/voxretail/assistant/internal/domain"
)

// ErrClassifierUnavailable reports that the primary classifier could not
// produce a usable result: unreachable, timed out, breaker open, or the
// reply failed to parse. The router falls back to rules on this error.
var ErrClassifierUnavailable = errors.New("primary classifier unavailable")

const systemPrompt = `You are an intent parser for a voice inventory management system.
Extract the intent and entities from the user's voice transcript.

Canonical intents:
- get_stock: Query stock levels for products
- create_reorder: Create a reorder/purchase order
- get_sales_summary: Get sales summary for a time period
- get_supplier_info: Get supplier information for a product
- get_delivery_status: Get delivery status for a reorder

Entities to extract:
- sku: Product SKU code
- name: Product name (e.g., "hoodie", "jeans", "t-shirt")
- color: Product color
- size: Product size
- quantity: Number of items
- window_days: Number of days for sales summary (default 7)
- reorder_id: Reorder identifier
- purchase_order_id: Purchase order identifier

Return JSON in this exact format:
{
  "intent": "get_stock",
  "entities": {
    "name": "hoodie",
    "color": "red",
    "size": "large"
  }
}`

// ChatCompleter is the slice of the OpenAI client the classifier needs.
type ChatCompleter interface {
	ChatCompletionJSON(ctx context.Context, messages []openai.Message) (string, error)
}

// OpenAIClassifier is the primary classifier adapter. A circuit breaker
// sits in front of the API call so a flapping collaborator degrades to
// the rule-based path immediately instead of burning the 5s timeout on
// every request.
type OpenAIClassifier struct {
	client  ChatCompleter
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

func NewOpenAIClassifier(client ChatCompleter, log *zap.Logger) *OpenAIClassifier {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-intent",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn("Classifier circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &OpenAIClassifier{
		client:  client,
		breaker: cb,
		log:     log,
	}
}

type classifierReply struct {
	Intent   string         `json:"intent"`
	Entities map[string]any `json:"entities"`
}

func (c *OpenAIClassifier) Classify(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
	userPrompt := fmt.Sprintf("Transcript: %s\n\nExtract intent and entities.", transcript)

	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.ChatCompletionJSON(ctx, []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		})
	})
	if err != nil {
		c.log.Warn("OpenAI intent parsing failed", zap.Error(err))
		return domain.ParsedIntent{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	var reply classifierReply
	if err := json.Unmarshal([]byte(raw.(string)), &reply); err != nil {
		c.log.Warn("OpenAI reply is not the expected shape", zap.Error(err))
		return domain.ParsedIntent{}, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	if reply.Intent == "" {
		reply.Intent = domain.DefaultIntent
	}

	// Classifier-extracted entities overwrite device hints on collision;
	// device hints survive otherwise.
	entities := device.Merge(domain.EntitySetFromMap(reply.Entities))

	return domain.ParsedIntent{Intent: reply.Intent, Entities: entities}, nil
}
