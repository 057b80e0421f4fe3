package slurm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesAcrossWrapping(t *testing.T) {
	err := fmt.Errorf("loading job: %w", &Error{Errno: ErrnoInvalidJobID})

	assert.True(t, errors.Is(err, ErrInvalidJobID))
	assert.False(t, errors.Is(err, ErrInvalidPartitionName))
}

func TestErrorMessageCarriesErrno(t *testing.T) {
	msg := ErrInvalidJobID.Error()

	assert.NotEmpty(t, msg)
	assert.Contains(t, msg, fmt.Sprintf("(slurm errno %d)", int32(ErrnoInvalidJobID)))
}

func TestErrorAsExposesErrno(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Errno: ErrnoInvalidPartitionName})

	var slurmErr *Error
	require.True(t, errors.As(err, &slurmErr))
	assert.Equal(t, ErrnoInvalidPartitionName, slurmErr.Errno)
}

func TestStatusZeroIsSuccess(t *testing.T) {
	assert.NoError(t, status(0))
}

func TestStatusIsErrno(t *testing.T) {
	assert.NoError(t, statusIsErrno(0))

	err := statusIsErrno(1)
	require.Error(t, err)
	var slurmErr *Error
	require.True(t, errors.As(err, &slurmErr))
	assert.Equal(t, Errno(1), slurmErr.Errno)
}
