package commands

import (
	"context"

	"storefront/internal/core/ports"
	"storefront/internal/pkg/metrics"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler is the transition engine of the order
// lifecycle. It enacts one validated state change with an auditable record:
// load the order with its row locked, capture the previous state, append one
// ledger entry, and update the order's current state, all inside a single
// transaction. The locked load serializes concurrent transitions on the same
// order, so the captured previous state is always the committed state.
//
// On success exactly one new ledger entry exists and the order's status
// equals the requested state. On any failure the transaction rolls back and
// no partial state (order updated without ledger entry, or vice versa) is
// observable to readers.
//
// After commit the handler publishes an order.status_changed event; a
// publish failure is logged and dropped, it never fails the transition.
type ChangeOrderStatusCommandHandler struct {
	uowFactory TransitionUoWFactory
	publisher  ports.OrderStatusPublisher
	metrics    *metrics.OrderMetrics
	logger     *zap.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// publisher and metrics may be nil; logger must not be.
func NewChangeOrderStatusCommandHandler(
	uowFactory TransitionUoWFactory,
	publisher ports.OrderStatusPublisher,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    orderMetrics,
		logger:     logger,
	}
}

// Handle processes the transition command.
//
// Failure modes surfaced to the caller:
//   - command not constructed / invalid target state: validation error
//   - unknown order id: errs.ObjectNotFoundError
//   - illegal transition per the workflow table: validation error
//   - storage fault: the underlying persistence error
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.StatusHistoryRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	change, err := aggregate.ChangeStatus(cmd.NewStatus(), cmd.Comment())
	if err != nil {
		return err
	}

	if err = historyRepo.Append(ctx, change); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.IncTransition(change.Previous().String(), change.Next().String())

	if h.publisher != nil {
		if pubErr := h.publisher.PublishStatusChanged(ctx, change); pubErr != nil {
			h.logger.Warn("failed to publish status change",
				zap.String("order_id", change.OrderID().String()),
				zap.String("new_status", change.Next().String()),
				zap.Error(pubErr),
			)
		}
	}

	return nil
}
