package command

import (
	"time"

	"github.com/vbms/inventory-service/internal/inventory/domain"
)

// AlertDispatcher fans fired alerts out to the notification pipeline.
// Implementations must not block the calling operation and must swallow their
// own failures (log, never propagate); inventory mutations do not depend on
// notification infrastructure.
type AlertDispatcher interface {
	Dispatch(item *domain.Item, alerts []domain.Alert)
}

// NoopDispatcher drops alerts; used when no broker is configured.
type NoopDispatcher struct{}

func (NoopDispatcher) Dispatch(item *domain.Item, alerts []domain.Alert) {}

// MovementPublisher echoes ledger entries to downstream consumers. Optional:
// a dispatcher that also implements it receives every appended entry.
type MovementPublisher interface {
	PublishMovement(item *domain.Item, tx *domain.Transaction)
}

// dispatchAlerts evaluates the item and hands any fired alerts to the
// dispatcher. Runs after every quantity mutation.
func dispatchAlerts(d AlertDispatcher, item *domain.Item) {
	if d == nil {
		return
	}
	alerts := domain.EvaluateAlerts(item, time.Now())
	if len(alerts) == 0 {
		return
	}
	d.Dispatch(item, alerts)
}

// publishMovement echoes a ledger entry when the dispatcher supports it.
func publishMovement(d AlertDispatcher, item *domain.Item, tx *domain.Transaction) {
	if tx == nil {
		return
	}
	if p, ok := d.(MovementPublisher); ok {
		p.PublishMovement(item, tx)
	}
}
