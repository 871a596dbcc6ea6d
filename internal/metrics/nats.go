package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/mark3labs/onboardr/internal/logger"
)

const streamName = "onboardr_events"

// SubjectForEvent returns the JetStream subject for an event name.
// Names are slugified so free-form labels stay valid NATS tokens.
// Example: "Sign In Submitted" -> "onboardr.events.sign-in-submitted"
func SubjectForEvent(name string) string {
	return fmt.Sprintf("onboardr.events.%s", slug.Make(name))
}

// StartEmbeddedNATS starts an embedded NATS server with JetStream enabled
// using the specified data directory for file-based storage.
func StartEmbeddedNATS(dataDir string) (*server.Server, error) {
	logger.Debug("Starting embedded NATS server with data dir: %s", dataDir)

	opts := &server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true, // No network ports - in-process only
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// NATSRecorder persists events to an embedded JetStream stream so later
// runs of the editor can read the full onboarding history.
type NATSRecorder struct {
	ns *server.Server
	nc *nats.Conn
	js jetstream.JetStream
}

// NewNATSRecorder starts an embedded server in dataDir, connects to it
// in-process and ensures the event stream exists.
func NewNATSRecorder(ctx context.Context, dataDir string) (*NATSRecorder, error) {
	ns, err := StartEmbeddedNATS(dataDir)
	if err != nil {
		return nil, err
	}

	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("failed to connect to embedded nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, err
	}

	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"onboardr.>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   30 * 24 * time.Hour,
	}); err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("failed to create event stream: %w", err)
	}

	return &NATSRecorder{ns: ns, nc: nc, js: js}, nil
}

// Capture appends an event to the JetStream event log. Publish failures
// are logged and swallowed; analytics must never break the wizard.
func (r *NATSRecorder) Capture(name string, props map[string]string) {
	event := Event{
		Timestamp: time.Now(),
		Name:      name,
		Props:     props,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to marshal event %q: %v", name, err)
		return
	}

	subject := SubjectForEvent(name)
	logger.Debug("Publishing event: name=%s subject=%s", name, subject)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ack, err := r.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return
	}
	logger.Debug("Event published successfully: seq=%d", ack.Sequence)
}

// History replays every stored event in publish order.
func (r *NATSRecorder) History(ctx context.Context) ([]Event, error) {
	stream, err := r.js.Stream(ctx, streamName)
	if err != nil {
		return nil, err
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		AckPolicy:     jetstream.AckExplicitPolicy,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	})
	if err != nil {
		return nil, err
	}

	info, err := stream.Info(ctx)
	if err != nil {
		return nil, err
	}
	pending := int(info.State.Msgs)
	if pending == 0 {
		return nil, nil
	}

	batch, err := consumer.Fetch(pending, jetstream.FetchMaxWait(2*time.Second))
	if err != nil {
		return nil, err
	}

	var events []Event
	for msg := range batch.Messages() {
		var e Event
		if err := json.Unmarshal(msg.Data(), &e); err != nil {
			logger.Warn("Skipping undecodable event: %v", err)
			_ = msg.Ack()
			continue
		}
		events = append(events, e)
		_ = msg.Ack()
	}
	return events, batch.Error()
}

// Close drains the connection and shuts the embedded server down.
func (r *NATSRecorder) Close() error {
	logger.Debug("Starting NATS shutdown")

	if r.nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- r.nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				r.nc.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			r.nc.Close()
		}
	}

	if r.ns != nil {
		r.ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			r.ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("NATS server shutdown timed out")
		}
	}

	return nil
}
