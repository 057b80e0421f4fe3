package slurm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The sentinel constants track the installed headers; these are the
// values every supported release uses.
func TestSentinelValues(t *testing.T) {
	assert.Equal(t, uint32(0xfffffffe), NoVal)
	assert.Equal(t, uint64(0xfffffffffffffffe), NoVal64)
}
