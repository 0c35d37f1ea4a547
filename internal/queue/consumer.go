package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/marlonxteban/fyyur/internal/logging"
)

// ActivityLogFile is the file inside the log directory the consumer
// appends to.
const ActivityLogFile = "activity.log"

// StartActivityConsumer connects to RabbitMQ, declares the activity queue
// and appends every event to logDir/activity.log.  It reconnects with
// exponential backoff until ctx is cancelled, then returns ctx.Err().
// Undecodable messages are rejected without requeue.
func StartActivityConsumer(ctx context.Context, url, logDir string) error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			logging.Warn().Err(err).Dur("retry_in", backoff).Msg("activity consumer: dial failed")
			if !sleepCtx(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, logDir)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logging.Warn().Err(err).Msg("activity consumer: consume loop ended, reconnecting")
		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, logDir string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		logging.Warn().Err(err).Msg("activity consumer: set QoS failed")
	}
	if err := declareActivityQueue(ch); err != nil {
		return err
	}

	msgs, err := ch.ConsumeWithContext(ctx, ActivityQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := HandleMessage(logDir, d.Body); err != nil {
			logging.Error().Err(err).Msg("activity consumer: handle message failed")
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// HandleMessage decodes one event and appends its log line.
func HandleMessage(logDir string, body []byte) error {
	var ev DirectoryEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if ev.Kind == "" {
		return errors.New("event without kind")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, ActivityLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLine(ev)); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLine renders ev as a single human-friendly log line ending in a
// newline.
func FormatLine(ev DirectoryEvent) string {
	line := fmt.Sprintf("[%s] %s", ev.OccurredAt.UTC().Format(time.RFC3339), ev.Kind)
	if ev.VenueID != 0 {
		line += fmt.Sprintf(" | venue_id=%d", ev.VenueID)
	}
	if ev.ArtistID != 0 {
		line += fmt.Sprintf(" | artist_id=%d", ev.ArtistID)
	}
	if ev.Name != "" {
		line += fmt.Sprintf(" | name=%q", ev.Name)
	}
	if !ev.StartTime.IsZero() {
		line += " | start_time=" + ev.StartTime.UTC().Format(time.RFC3339)
	}
	return line + "\n"
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
