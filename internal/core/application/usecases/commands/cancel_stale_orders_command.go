package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
)

// CancelStaleOrdersCommand represents a request to cancel every order that has
// stayed in the created status longer than the given age.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command for the automatic cleanup of
// unconfirmed orders. olderThan must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setOlderThan(olderThan); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// OlderThan returns the minimum age an order must reach before cancellation.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

// Validate checks that the command was created through its constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

func (c *CancelStaleOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidError("olderThan")
	}
	c.olderThan = olderThan
	return nil
}
