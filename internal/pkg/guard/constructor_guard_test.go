package guard_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("command must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		assert.NoError(t, g.Validate(notConstructed))
	})

	t.Run("zero value returns the caller's error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, notConstructed, g.Validate(notConstructed))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

// Commands and queries embed the guard so struct literals that skip the
// constructor are rejected before a handler runs.
func TestConstructorGuard_RejectsBareCommand(t *testing.T) {
	type command struct {
		guard guard.ConstructorGuard
	}

	var bare command
	assert.Error(t, bare.guard.Validate(nil))

	built := command{guard: guard.NewConstructorGuard()}
	assert.NoError(t, built.guard.Validate(nil))
}
