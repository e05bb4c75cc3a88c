package kernel_test

import (
	"errors"
	"testing"

	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("value must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		assert.NoError(t, guard.Validate(notConstructed))
		assert.NoError(t, guard.Validate(nil))
	})

	t.Run("zero value returns the caller's error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		assert.Equal(t, notConstructed, guard.Validate(notConstructed))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		assert.Equal(t, kernel.ErrDefaultConstructorGuard, guard.Validate(nil))
	})
}

func TestConstructorGuard_CatchesStructLiterals(t *testing.T) {
	type guarded struct {
		guard kernel.ConstructorGuard
	}

	bypassed := guarded{}
	constructed := guarded{guard: kernel.NewConstructorGuard()}

	assert.Error(t, bypassed.guard.Validate(nil))
	assert.NoError(t, constructed.guard.Validate(nil))
}
