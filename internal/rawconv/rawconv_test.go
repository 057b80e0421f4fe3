package rawconv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noVal32 uint32 = 0xfffffffe

func TestTimeOrNone(t *testing.T) {
	assert.Nil(t, TimeOrNone(0), "zero is the unset sentinel, not the epoch")

	got := TimeOrNone(1514764800)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestU32OrNone(t *testing.T) {
	assert.Nil(t, U32OrNone(noVal32, noVal32))

	got := U32OrNone(0, noVal32)
	require.NotNil(t, got, "zero is a legal value for sentinel-guarded fields")
	assert.Equal(t, uint32(0), *got)

	got = U32OrNone(1440, noVal32)
	require.NotNil(t, got)
	assert.Equal(t, uint32(1440), *got)
}

func TestDurationBetween(t *testing.T) {
	start := time.Date(2018, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Second)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  *time.Duration
	}{
		{"both endpoints", &start, &end, durPtr(95 * time.Second)},
		{"missing end", &start, nil, nil},
		{"missing start", nil, &end, nil},
		{"both missing", nil, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DurationBetween(tt.start, tt.end)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDurationBetweenExact(t *testing.T) {
	// The derived duration must be exactly end minus start, including
	// negative spans (clock skew between daemons does happen).
	start := time.Unix(2000, 0)
	end := time.Unix(1990, 0)
	got := DurationBetween(&start, &end)
	require.NotNil(t, got)
	assert.Equal(t, -10*time.Second, *got)
}

func TestExitCode(t *testing.T) {
	assert.Nil(t, ExitCode(0, false), "no exit code before the record finishes")

	got := ExitCode(0, true)
	require.NotNil(t, got)
	assert.Equal(t, int32(0), *got)

	// wait(2) encoding: exit status lives in bits 8..15.
	got = ExitCode(3<<8, true)
	require.NotNil(t, got)
	assert.Equal(t, int32(3), *got)
}

func TestVMSize(t *testing.T) {
	const unset uint64 = 0xfffffffffffffffe
	assert.Nil(t, VMSize(0, unset))
	assert.Nil(t, VMSize(unset, unset))

	got := VMSize(204800, unset)
	require.NotNil(t, got)
	assert.Equal(t, uint64(204800), *got)
}

func durPtr(d time.Duration) *time.Duration { return &d }
