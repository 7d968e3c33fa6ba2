package otel

import (
	"context"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"workspace-hub/backend/internal/notification"
)

// Logger is the subset of otellog.Logger the recorder uses.
type Logger interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewDeliveryRecorder returns a recorder that emits one OTel log record per notification delivery.
// A nil provider yields a recorder that drops everything.
func NewDeliveryRecorder(provider *sdklog.LoggerProvider) notification.DeliveryRecorder {
	if provider == nil {
		return noopRecorder{}
	}
	return NewDeliveryRecorderWithLogger(provider.Logger("workspace-hub.notification"))
}

// NewDeliveryRecorderWithLogger is NewDeliveryRecorder over an explicit logger.
func NewDeliveryRecorderWithLogger(l Logger) notification.DeliveryRecorder {
	return &deliveryRecorder{logger: l, now: time.Now}
}

type noopRecorder struct{}

func (noopRecorder) RecordDelivery(context.Context, *notification.InvitationCreated, error) {}

type deliveryRecorder struct {
	logger Logger
	now    func() time.Time
}

func (r *deliveryRecorder) RecordDelivery(ctx context.Context, e *notification.InvitationCreated, err error) {
	if e == nil {
		return
	}
	var rec otellog.Record
	rec.SetTimestamp(r.now().UTC())
	rec.SetEventName(e.Type)
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("invitation email delivered"))
	if err != nil {
		rec.SetSeverity(otellog.SeverityWarn)
		rec.SetBody(otellog.StringValue("invitation email failed"))
		rec.AddAttributes(otellog.String("error", err.Error()))
	}
	rec.AddAttributes(
		otellog.String("invitation_id", e.InvitationID),
		otellog.String("workspace_id", e.WorkspaceID),
		otellog.String("role", e.Role),
	)
	if e.InvitedByID != "" {
		rec.AddAttributes(otellog.String("invited_by_id", e.InvitedByID))
	}
	r.logger.Emit(ctx, rec)
}
