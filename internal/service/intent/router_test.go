package intent

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/mocks"
	"github.com/voxretail/assistant/internal/service/nlu"
	"github.com/voxretail/assistant/internal/service/speech"
)

func newTestRouter(primary, fallback *mocks.MockClassifier, ops *mocks.MockOperations) *Router {
	if fallback == nil {
		fallback = &mocks.MockClassifier{}
	}
	if ops == nil {
		ops = &mocks.MockOperations{}
	}
	if primary == nil {
		return NewRouter(nil, fallback, ops, speech.NewGenerator(), RouterDefaults{}, zap.NewNop())
	}
	return NewRouter(primary, fallback, ops, speech.NewGenerator(), RouterDefaults{}, zap.NewNop())
}

func TestRoute_PrimaryClassifierWins(t *testing.T) {
	// Arrange
	primary := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{Intent: domain.IntentGetStock, Entities: domain.EntitySet{Color: "red"}}, nil
		},
	}
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			t.Fatal("fallback must not run when primary succeeds")
			return domain.ParsedIntent{}, nil
		},
	}
	ops := &mocks.MockOperations{
		GetStockFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			return domain.Success(domain.StockResult{Items: []domain.StockItem{{Name: "hoodie", Quantity: 4}}})
		},
	}
	router := newTestRouter(primary, fallback, ops)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "how many red hoodies are left"})

	// Assert
	if !envelope.OK || envelope.Intent != domain.IntentGetStock {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
	if envelope.Entities.Color != "red" {
		t.Errorf("classifier entities should be echoed, got %+v", envelope.Entities)
	}
	if envelope.Speech == "" {
		t.Errorf("speech must never be empty")
	}
}

func TestRoute_FallsBackWhenPrimaryUnavailable(t *testing.T) {
	// Arrange
	primary := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{}, nlu.ErrClassifierUnavailable
		},
	}
	fallbackRan := false
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			fallbackRan = true
			return domain.ParsedIntent{Intent: domain.IntentGetSalesSummary, Entities: domain.EntitySet{WindowDays: 7}}, nil
		},
	}
	ops := &mocks.MockOperations{
		GetSalesSummaryFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			return domain.Success(domain.SalesSummaryResult{WindowDays: entities.WindowDays})
		},
	}
	router := newTestRouter(primary, fallback, ops)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "sales summary for the week"})

	// Assert
	if !fallbackRan {
		t.Fatal("fallback classifier should have run")
	}
	if !envelope.OK || envelope.Intent != domain.IntentGetSalesSummary {
		t.Fatalf("unexpected envelope %+v", envelope)
	}
}

func TestRoute_RuleClassifierEndToEnd(t *testing.T) {
	// Arrange
	var gotEntities domain.EntitySet
	ops := &mocks.MockOperations{
		CreateReorderFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			gotEntities = entities
			return domain.Success(domain.ReorderResult{TaskID: "TASKAB12CD", Quantity: entities.Quantity, Status: "pending"})
		},
	}
	router := NewRouter(nil, nlu.NewRuleClassifier(), ops, speech.NewGenerator(), RouterDefaults{}, zap.NewNop())

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "Restock 25 black jeans"})

	// Assert
	if envelope.Intent != domain.IntentCreateReorder {
		t.Fatalf("expected create_reorder, got %q", envelope.Intent)
	}
	if gotEntities.Quantity != 25 || gotEntities.Color != "black" {
		t.Errorf("expected quantity 25 and color black, got %+v", gotEntities)
	}
}

func TestRoute_BusinessFailureStillOK(t *testing.T) {
	// Arrange
	ops := &mocks.MockOperations{
		GetStockFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			return domain.Failed(domain.Internal("Database error"))
		},
	}
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{Intent: domain.IntentGetStock}, nil
		},
	}
	router := newTestRouter(nil, fallback, ops)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "how many hoodies"})

	// Assert
	if !envelope.OK {
		t.Error("operation failure must not flip the envelope to not-OK")
	}
	if !envelope.Result.IsFailure() {
		t.Error("result should carry the failure marker")
	}
	if envelope.Speech == "" {
		t.Error("speech must describe the failure")
	}
}

func TestRoute_TotalClassificationFailure(t *testing.T) {
	// Arrange
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{}, errors.New("boom")
		},
	}
	router := newTestRouter(nil, fallback, nil)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "anything", Language: "es"})

	// Assert
	if envelope.OK {
		t.Error("total classification failure must yield OK=false")
	}
	if envelope.Intent != domain.IntentUnknown {
		t.Errorf("expected unknown intent, got %q", envelope.Intent)
	}
	if envelope.Speech != speech.Lookup("es", "error_parse") {
		t.Errorf("expected Spanish parse error speech, got %q", envelope.Speech)
	}
	if envelope.Result.Failure == nil || envelope.Result.Failure.Kind != domain.ErrorInvalidInput {
		t.Errorf("expected invalid input failure, got %+v", envelope.Result.Failure)
	}
}

func TestRoute_UnknownIntent(t *testing.T) {
	// Arrange
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{Intent: "book_flight", Entities: device}, nil
		},
	}
	router := newTestRouter(nil, fallback, nil)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "book me a flight"})

	// Assert
	if envelope.OK {
		t.Error("unrecognized intent must yield OK=false")
	}
	if envelope.Intent != "book_flight" {
		t.Errorf("intent should be echoed, got %q", envelope.Intent)
	}
	if !envelope.Result.IsFailure() {
		t.Error("result should carry a failure marker")
	}
}

func TestRoute_PanicContainment(t *testing.T) {
	// Arrange
	ops := &mocks.MockOperations{
		GetStockFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			panic("nil map write")
		},
	}
	fallback := &mocks.MockClassifier{
		ClassifyFunc: func(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error) {
			return domain.ParsedIntent{Intent: domain.IntentGetStock}, nil
		},
	}
	router := newTestRouter(nil, fallback, ops)

	// Act
	envelope := router.Route(context.Background(), domain.VoiceEvent{Transcript: "stock levels"})

	// Assert
	if envelope.OK {
		t.Error("panic must yield OK=false")
	}
	if envelope.Speech == "" {
		t.Error("panic envelope still needs speech")
	}
}

func TestRoute_DeviceEntitiesReachOperations(t *testing.T) {
	// Arrange
	var gotEntities domain.EntitySet
	ops := &mocks.MockOperations{
		GetStockFunc: func(ctx context.Context, entities domain.EntitySet) domain.OperationResult {
			gotEntities = entities
			return domain.Success(domain.StockResult{})
		},
	}
	router := NewRouter(nil, nlu.NewRuleClassifier(), ops, speech.NewGenerator(), RouterDefaults{}, zap.NewNop())
	event := domain.VoiceEvent{
		Transcript: "do we have any in stock",
		Entities:   map[string]any{"product_id": "PROD-009", "quantity": float64(3), "unknown_key": "ignored"},
	}

	// Act
	envelope := router.Route(context.Background(), event)

	// Assert
	if gotEntities.ProductID != "PROD-009" || gotEntities.Quantity != 3 {
		t.Errorf("device entities should flow through, got %+v", gotEntities)
	}
	if envelope.Entities.ProductID != "PROD-009" {
		t.Errorf("entities should be echoed in the envelope, got %+v", envelope.Entities)
	}
}
