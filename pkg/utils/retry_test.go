package utils_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/consultingshop/checkout-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := utils.RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return errors.New("persistent")
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("non-retryable errors are returned immediately", func(t *testing.T) {
		sentinel := errors.New("conflict")
		calls := 0
		err := utils.Retry(cfg, func() error {
			calls++
			return fmt.Errorf("save: %w", sentinel)
		}, sentinel)
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, 1, calls)
	})
}
