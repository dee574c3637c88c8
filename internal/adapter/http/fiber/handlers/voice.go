package handlers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/adapter/queue"
	"github.com/voxretail/assistant/internal/domain"
	"github.com/voxretail/assistant/internal/ports"
)

// VoiceHandler serves the device webhook. Routing is synchronous; the
// interaction log and the queue publish are fire-and-forget.
type VoiceHandler struct {
	router    ports.Router
	voiceLogs ports.VoiceLogRepository
	mq        queue.MessageQueue
	log       *zap.Logger
}

func NewVoiceHandler(router ports.Router, voiceLogs ports.VoiceLogRepository, mq queue.MessageQueue, log *zap.Logger) *VoiceHandler {
	return &VoiceHandler{
		router:    router,
		voiceLogs: voiceLogs,
		mq:        mq,
		log:       log,
	}
}

func (h *VoiceHandler) HandleEvent(c *fiber.Ctx) error {
	var event domain.VoiceEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if event.Transcript == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transcript is required"})
	}

	envelope := h.router.Route(c.Context(), event)

	go h.recordInteraction(event, envelope)

	return c.JSON(envelope)
}

// recordInteraction persists the interaction and publishes it for
// downstream consumers. Failures are logged and swallowed; the device
// already has its answer.
func (h *VoiceHandler) recordInteraction(event domain.VoiceEvent, envelope domain.ResponseEnvelope) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entities, err := json.Marshal(envelope.Entities)
	if err != nil {
		entities = []byte("{}")
	}
	result, err := json.Marshal(envelope.Result)
	if err != nil {
		result = []byte("{}")
	}

	logRow := &domain.VoiceLog{
		ID:         uuid.NewString(),
		Transcript: event.Transcript,
		Intent:     envelope.Intent,
		Entities:   string(entities),
		Result:     string(result),
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.voiceLogs.Save(ctx, logRow); err != nil {
		h.log.Debug("voice log insert failed", zap.Error(err))
	}

	if h.mq != nil {
		payload, err := json.Marshal(envelope)
		if err == nil {
			if err := h.mq.Publish(queue.SubjectVoiceInteractions, payload); err != nil {
				h.log.Debug("voice interaction publish failed", zap.Error(err))
			}
		}
	}
}
