package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrNotYourTurn))
	assert.True(t, IsRejection(fmt.Errorf("invalid placement: %w", ErrCellOccupied)))
	assert.False(t, IsRejection(ErrGameNotFound))
	assert.False(t, IsRejection(errors.New("connection refused")))
	assert.False(t, IsRejection(nil))
}
