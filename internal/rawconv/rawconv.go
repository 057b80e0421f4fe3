// Package rawconv converts raw Slurm wire values, which encode "not set"
// with sentinels, into Go-native optional values. It is deliberately free
// of cgo so the conversion rules can be tested without a Slurm install.
package rawconv

import "time"

// TimeOrNone interprets sec as seconds since the Unix epoch, UTC. The zero
// sentinel means the timestamp has not been set; it is not the epoch.
func TimeOrNone(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

// U32OrNone returns v unless it equals the reserved unset sentinel.
func U32OrNone(v, unset uint32) *uint32 {
	if v == unset {
		return nil
	}
	return &v
}

// U64OrNone returns v unless it equals the reserved unset sentinel.
func U64OrNone(v, unset uint64) *uint64 {
	if v == unset {
		return nil
	}
	return &v
}

// DurationBetween derives end minus start. The duration exists only when
// both endpoints do; one known endpoint says nothing about elapsed time.
func DurationBetween(start, end *time.Time) *time.Duration {
	if start == nil || end == nil {
		return nil
	}
	d := end.Sub(*start)
	return &d
}

// ExitCode decodes a wait(2)-style status word as recorded by the
// accounting database. There is no code to report until the record has
// finished.
func ExitCode(status int32, finished bool) *int32 {
	if !finished {
		return nil
	}
	code := (status >> 8) & 0xff
	return &code
}

// VMSize filters a peak-virtual-memory reading. Zero means the accounting
// gatherer never reported one, and the 64-bit unset sentinel appears on
// some versions; both mean "no value".
func VMSize(kib, unset uint64) *uint64 {
	if kib == 0 || kib == unset {
		return nil
	}
	return &kib
}
