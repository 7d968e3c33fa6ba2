package notification

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// mailTimeout bounds one Mailer call.
const mailTimeout = 10 * time.Second

// DeliveryRecorder observes each delivery attempt (e.g. as an OTel log record). err is the Mailer's result.
type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, event *InvitationCreated, err error)
}

// MessageReader is the subset of *kafka.Reader the dispatcher consumes.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Dispatcher drains the notification queue into a Mailer. Each message gets one delivery attempt;
// failures are logged and recorded, and the message is not redelivered.
type Dispatcher struct {
	mailer   Mailer
	recorder DeliveryRecorder
}

// NewDispatcher returns a Dispatcher. recorder may be nil.
func NewDispatcher(mailer Mailer, recorder DeliveryRecorder) *Dispatcher {
	if mailer == nil {
		mailer = LogMailer{}
	}
	return &Dispatcher{mailer: mailer, recorder: recorder}
}

// Handle delivers one message. Undecodable messages are logged and skipped.
func (d *Dispatcher) Handle(ctx context.Context, msg kafka.Message) {
	event, err := Decode(msg)
	if err != nil {
		log.Printf("worker: %v", err)
		return
	}
	mctx, cancel := context.WithTimeout(ctx, mailTimeout)
	err = d.mailer.SendInvitation(mctx, event)
	cancel()
	if err != nil {
		log.Printf("worker: send invitation %s: %v", event.InvitationID, err)
	}
	if d.recorder != nil {
		d.recorder.RecordDelivery(ctx, event, err)
	}
}

// Run reads until ctx is cancelled. Read errors other than cancellation are logged and retried.
func (d *Dispatcher) Run(ctx context.Context, r MessageReader) {
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("worker: kafka read error: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		d.Handle(ctx, msg)
	}
}
