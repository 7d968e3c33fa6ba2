package notification

import (
	"context"
	"log"
	"time"
)

// publishTimeout bounds a single async publish. Also used by ShutdownDrainDuration.
const publishTimeout = 5 * time.Second

// ShutdownDrainDuration is how long to wait after gRPC GracefulStop before closing the publisher,
// so in-flight async publishes can finish. Must be >= publishTimeout.
const ShutdownDrainDuration = publishTimeout

// PublishAsync publishes event in a goroutine and returns immediately. The goroutine runs on a
// context detached from ctx's cancellation, so a finished request does not abort the publish.
// Failures are logged and never retried. pub and event may be nil.
func PublishAsync(ctx context.Context, pub Publisher, event *InvitationCreated) {
	if pub == nil || event == nil {
		return
	}
	detached := context.WithoutCancel(ctx)
	go func() {
		pctx, cancel := context.WithTimeout(detached, publishTimeout)
		defer cancel()
		if err := pub.Publish(pctx, event); err != nil {
			log.Printf("notification: publish %s for invitation %s failed: %v", event.Type, event.InvitationID, err)
		}
	}()
}
