package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

//go:generate mockgen -source=event_notifier_interface.go -destination=mocks/mock_event_notifier.go -package=mock_interfaces

// IEventNotifier hands service order events to downstream messaging.
// It is called after commit; a failure here never undoes the transition.
type IEventNotifier interface {
	Publish(ctx context.Context, event entities.ServiceOrderEvent) error
}
