// Command simulator fires synthetic voice events at a running server,
// standing in for the wearable during local development and load checks.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/voxretail/assistant/internal/domain"
)

var (
	serverURL  = flag.String("server", "http://localhost:8000/omi/event", "Webhook endpoint URL")
	token      = flag.String("token", "", "X-OMI-Token header value")
	language   = flag.String("language", "en", "Requested speech language")
	transcript = flag.String("transcript", "", "Send a single transcript instead of the built-in set")
	count      = flag.Int("count", 10, "Number of events to send")
	interval   = flag.Duration("interval", time.Second, "Delay between events")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
)

// transcripts covers every intent the classifier knows, plus a few that
// should fall through to the default stock lookup.
var transcripts = []string{
	"How many red hoodies are left?",
	"Do we have large white shirts in stock?",
	"Check stock for product 8321",
	"Restock 25 black jeans",
	"We need to reorder hoodies",
	"How did sales go this week?",
	"Show me the revenue for last month",
	"Who supplies product 8321?",
	"What's the delivery status for order 12345?",
	"When is the next shipment arriving?",
	"blue t-shirts please",
}

func main() {
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Shutting down simulator")
		cancel()
	}()

	client := &http.Client{Timeout: 15 * time.Second}

	sent, failed := 0, 0
	for i := 0; i < *count; i++ {
		select {
		case <-ctx.Done():
			logger.Info("Simulator stopped", zap.Int("sent", sent), zap.Int("failed", failed))
			return
		default:
		}

		text := *transcript
		if text == "" {
			text = transcripts[rand.Intn(len(transcripts))]
		}

		envelope, err := send(ctx, client, text)
		if err != nil {
			failed++
			logger.Error("Event failed", zap.String("transcript", text), zap.Error(err))
		} else {
			sent++
			logger.Info("Event sent",
				zap.String("transcript", text),
				zap.String("intent", envelope.Intent),
				zap.Bool("ok", envelope.OK),
				zap.String("speech", envelope.Speech),
			)
		}

		if i < *count-1 {
			select {
			case <-ctx.Done():
			case <-time.After(*interval):
			}
		}
	}

	logger.Info("Simulator finished", zap.Int("sent", sent), zap.Int("failed", failed))
}

func send(ctx context.Context, client *http.Client, text string) (*domain.ResponseEnvelope, error) {
	event := domain.VoiceEvent{
		Transcript: text,
		SessionID:  fmt.Sprintf("sim-%d", time.Now().UnixNano()),
		Language:   *language,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *serverURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if *token != "" {
		req.Header.Set("X-OMI-Token", *token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var envelope domain.ResponseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	return &envelope, nil
}
