package nlu

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/adapter/ai/openai"
	"github.com/voxretail/assistant/internal/domain"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) ChatCompletionJSON(ctx context.Context, messages []openai.Message) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestOpenAIClassifier_ParsesReply(t *testing.T) {
	// Arrange
	stub := &stubCompleter{reply: `{"intent":"create_reorder","entities":{"name":"jeans","color":"black","quantity":25}}`}
	c := NewOpenAIClassifier(stub, zap.NewNop())

	// Act
	parsed, err := c.Classify(context.Background(), "Restock 25 black jeans", domain.EntitySet{})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Intent != domain.IntentCreateReorder {
		t.Errorf("expected create_reorder, got %q", parsed.Intent)
	}
	if parsed.Entities.Name != "jeans" || parsed.Entities.Color != "black" || parsed.Entities.Quantity != 25 {
		t.Errorf("unexpected entities %+v", parsed.Entities)
	}
}

func TestOpenAIClassifier_MergeOverwritesDeviceHints(t *testing.T) {
	// Arrange
	stub := &stubCompleter{reply: `{"intent":"get_stock","entities":{"color":"blue"}}`}
	c := NewOpenAIClassifier(stub, zap.NewNop())
	device := domain.EntitySet{Color: "red", ProductID: "PROD-001"}

	// Act
	parsed, err := c.Classify(context.Background(), "how many blue shirts", device)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Entities.Color != "blue" {
		t.Errorf("classifier color should overwrite the device hint, got %q", parsed.Entities.Color)
	}
	if parsed.Entities.ProductID != "PROD-001" {
		t.Errorf("untouched device hints should survive, got %+v", parsed.Entities)
	}
}

func TestOpenAIClassifier_MissingIntentDefaults(t *testing.T) {
	// Arrange
	stub := &stubCompleter{reply: `{"entities":{"name":"hoodie"}}`}
	c := NewOpenAIClassifier(stub, zap.NewNop())

	// Act
	parsed, err := c.Classify(context.Background(), "hoodies", domain.EntitySet{})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Intent != domain.DefaultIntent {
		t.Errorf("missing intent should default to %q, got %q", domain.DefaultIntent, parsed.Intent)
	}
}

func TestOpenAIClassifier_TransportFailure(t *testing.T) {
	// Arrange
	stub := &stubCompleter{err: errors.New("connection refused")}
	c := NewOpenAIClassifier(stub, zap.NewNop())

	// Act
	_, err := c.Classify(context.Background(), "anything", domain.EntitySet{})

	// Assert
	if !errors.Is(err, ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestOpenAIClassifier_MalformedReply(t *testing.T) {
	// Arrange
	stub := &stubCompleter{reply: `not json at all`}
	c := NewOpenAIClassifier(stub, zap.NewNop())

	// Act
	_, err := c.Classify(context.Background(), "anything", domain.EntitySet{})

	// Assert
	if !errors.Is(err, ErrClassifierUnavailable) {
		t.Fatalf("malformed replies must surface as unavailability, got %v", err)
	}
}

func TestOpenAIClassifier_BreakerOpensAfterFailures(t *testing.T) {
	// Arrange
	stub := &stubCompleter{err: errors.New("timeout")}
	c := NewOpenAIClassifier(stub, zap.NewNop())

	// Act
	for i := 0; i < 5; i++ {
		c.Classify(context.Background(), "anything", domain.EntitySet{}) //nolint:errcheck
	}
	callsBeforeOpen := stub.calls
	_, err := c.Classify(context.Background(), "anything", domain.EntitySet{})

	// Assert
	if !errors.Is(err, ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
	if stub.calls != callsBeforeOpen {
		t.Errorf("breaker should short-circuit once open, calls went %d -> %d", callsBeforeOpen, stub.calls)
	}
}
