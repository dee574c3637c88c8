package ports

import (
	"context"

	"github.com/voxretail/assistant/internal/domain"
)

// Classifier maps a transcript plus device-supplied entities to an intent.
// Rule-based implementations never fail; the primary (LLM) implementation
// returns nlu.ErrClassifierUnavailable when the collaborator is unusable.
type Classifier interface {
	Classify(ctx context.Context, transcript string, device domain.EntitySet) (domain.ParsedIntent, error)
}

// Operations are the five data operations, one per canonical intent.
// Each converts every store failure into the result's failure marker;
// none of them returns a Go error.
type Operations interface {
	GetStock(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	CreateReorder(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetSalesSummary(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetSupplierInfo(ctx context.Context, entities domain.EntitySet) domain.OperationResult
	GetDeliveryStatus(ctx context.Context, entities domain.EntitySet) domain.OperationResult
}

// Router is the single orchestration entry point exposed to transport.
type Router interface {
	Route(ctx context.Context, event domain.VoiceEvent) domain.ResponseEnvelope
}
