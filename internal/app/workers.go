package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/dochouse_backend/config"
	"github.com/Alijeyrad/dochouse_backend/pkg/events"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc  fx.Lifecycle
	Cfg *config.Config
	NC  *nats.Conn `optional:"true"`
}

func RegisterWorkers(p WorkerParams) {
	if p.NC == nil {
		return
	}

	var sub *nats.Subscription
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			sub, err = startAppointmentWorker(p.NC, p.Cfg.Nats.SubjectPrefix)
			return err
		},
		OnStop: func(ctx context.Context) error {
			// Drain of the connection is handled by ProvideNatsClient
			if sub == nil {
				return nil
			}
			return sub.Unsubscribe()
		},
	})
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

func startAppointmentWorker(nc *nats.Conn, prefix string) (*nats.Subscription, error) {
	subject := events.Subject(prefix, "appointment.>")

	sub, err := nc.Subscribe(subject, func(msg *nats.Msg) {
		handleAppointmentEvent(msg.Subject, msg.Data)
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe failed", "subject", subject, "err", err)
		return nil, err
	}

	slog.Info("appointment_worker: started", "subject", subject)
	return sub, nil
}

func handleAppointmentEvent(subject string, data []byte) {
	var ev events.AppointmentEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.Warn("appointment_worker: malformed event", "subject", subject, "err", err)
		return
	}

	slog.Info("appointment_worker: event",
		"subject", subject,
		"appointment_id", ev.AppointmentID,
		"email", ev.Email,
		"date", ev.Date,
		"slot", ev.Slot,
		"request_id", ev.RequestID,
	)
}
