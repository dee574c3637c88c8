// Package intent orchestrates one webhook request end to end:
// classification, dispatch and speech assembly.
package intent

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/observability/telemetry"
	"github.com/voxretail/assistant/internal/ports"
	"github.com/voxretail/assistant/internal/service/speech"
)

type operationFunc func(ctx context.Context, entities domain.EntitySet) domain.OperationResult

type Router struct {
	primary  ports.Classifier // nil when no LLM is configured
	fallback ports.Classifier
	handlers map[string]operationFunc
	speech   *speech.Generator
	defaults RouterDefaults
	log      *zap.Logger
}

type RouterDefaults struct {
	Language string
}

func NewRouter(primary, fallback ports.Classifier, ops ports.Operations, gen *speech.Generator, defaults RouterDefaults, log *zap.Logger) *Router {
	if defaults.Language == "" {
		defaults.Language = speech.DefaultLanguage
	}
	return &Router{
		primary:  primary,
		fallback: fallback,
		handlers: map[string]operationFunc{
			domain.IntentGetStock:          ops.GetStock,
			domain.IntentCreateReorder:     ops.CreateReorder,
			domain.IntentGetSalesSummary:   ops.GetSalesSummary,
			domain.IntentGetSupplierInfo:   ops.GetSupplierInfo,
			domain.IntentGetDeliveryStatus: ops.GetDeliveryStatus,
		},
		speech:   gen,
		defaults: defaults,
		log:      log,
	}
}

// Route runs classification, dispatches the matching operation and
// assembles the response envelope. It never panics and never returns
// an empty speech field. OK is false only when classification failed
// entirely or the resolved intent has no handler.
func (r *Router) Route(ctx context.Context, event domain.VoiceEvent) (envelope domain.ResponseEnvelope) {
	start := time.Now()
	language := event.Language
	if language == "" {
		language = r.defaults.Language
	}

	defer func() {
		telemetry.VoiceLatency.Observe(time.Since(start).Seconds())
		if rec := recover(); rec != nil {
			r.log.Error("voice routing panicked", zap.Any("panic", rec), zap.String("transcript", event.Transcript))
			telemetry.VoiceCommandsTotal.WithLabelValues(domain.IntentUnknown, "panic").Inc()
			failure := domain.Internal("internal error")
			envelope = domain.ResponseEnvelope{
				OK:     false,
				Intent: domain.IntentUnknown,
				Result: domain.Failed(failure),
				Speech: r.speech.ErrorSpeech(failure.Kind, language),
			}
		}
	}()

	parsed, err := r.classify(ctx, event)
	if err != nil {
		r.log.Error("classification failed entirely", zap.Error(err), zap.String("transcript", event.Transcript))
		telemetry.VoiceCommandsTotal.WithLabelValues(domain.IntentUnknown, "parse_error").Inc()
		failure := domain.InvalidInput(err.Error())
		return domain.ResponseEnvelope{
			OK:     false,
			Intent: domain.IntentUnknown,
			Result: domain.Failed(failure),
			Speech: r.speech.ErrorSpeech(failure.Kind, language),
		}
	}

	handler, ok := r.handlers[parsed.Intent]
	if !ok {
		r.log.Warn("no handler for intent", zap.String("intent", parsed.Intent))
		telemetry.VoiceCommandsTotal.WithLabelValues(parsed.Intent, "unknown_intent").Inc()
		failure := domain.NotFound(fmt.Sprintf("Unknown intent: %s", parsed.Intent))
		return domain.ResponseEnvelope{
			OK:       false,
			Intent:   parsed.Intent,
			Entities: parsed.Entities,
			Result:   domain.Failed(failure),
			Speech:   r.speech.ErrorSpeech(failure.Kind, language),
		}
	}

	result := handler(ctx, parsed.Entities)

	status := "success"
	if result.IsFailure() {
		status = "failure"
	} else if parsed.Intent == domain.IntentCreateReorder {
		telemetry.ReordersCreatedTotal.Inc()
	}
	telemetry.VoiceCommandsTotal.WithLabelValues(parsed.Intent, status).Inc()

	return domain.ResponseEnvelope{
		OK:       true,
		Intent:   parsed.Intent,
		Entities: parsed.Entities,
		Result:   result,
		Speech:   r.speech.Generate(parsed.Intent, result, language),
	}
}

// classify runs the primary classifier and falls back to rules when it
// is unavailable. Exactly one classifier decides per request.
func (r *Router) classify(ctx context.Context, event domain.VoiceEvent) (domain.ParsedIntent, error) {
	device := domain.EntitySetFromMap(event.Entities)

	if r.primary != nil {
		parsed, err := r.primary.Classify(ctx, event.Transcript, device)
		if err == nil {
			return parsed, nil
		}
		r.log.Warn("primary classifier unavailable, falling back to rules", zap.Error(err))
		telemetry.ClassifierFallbacksTotal.Inc()
	}
	return r.fallback.Classify(ctx, event.Transcript, device)
}
