package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// staleCancellationComment is recorded in the ledger entry of every order the
// cleanup cancels, so support can tell automatic cancellations from manual ones.
const staleCancellationComment = "cancelado automaticamente por falta de confirmacion"

// CancelStaleOrdersCommandHandler cancels orders that never left the created
// status. Each cancellation goes through the same aggregate transition path
// as a manual one, so every cancelled order gets its ledger entry.
type CancelStaleOrdersCommandHandler struct {
	uowFactory TransitionUoWFactory
	logger     *zap.Logger
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale order cleanup.
func NewCancelStaleOrdersCommandHandler(
	uowFactory TransitionUoWFactory,
	logger *zap.Logger,
) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle cancels all orders created earlier than now minus cmd.OlderThan().
// The whole batch commits in one transaction. Returns the number of orders
// cancelled.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	historyRepo := uow.StatusHistoryRepository()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	staleOrders, err := orderRepo.GetAllInCreatedStatusOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range staleOrders {
		change, changeErr := aggregate.ChangeStatus(order.Cancelled, staleCancellationComment)
		if changeErr != nil {
			return 0, changeErr
		}

		if err = historyRepo.Append(ctx, change); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if cancelled > 0 {
		h.logger.Info("cancelled stale orders", zap.Int("count", cancelled))
	}

	return cancelled, nil
}
