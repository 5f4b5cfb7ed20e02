package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandByteArray_Length(t *testing.T) {
	assert.Len(t, GenerateRandByteArray(24), 24)
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte{1, 2, 3}
	WipeByteArray(buf)
	assert.Equal(t, []byte{0, 0, 0}, buf)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestPersistenceError_UnwrapAndMatch(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("add employee: %w", &PersistenceError{Op: "set", Key: StorageKeyEmployees, Err: cause})

	assert.True(t, IsPersistence(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `persistence set "employees": disk full`)

	assert.False(t, IsPersistence(ErrorNotFound))
}
