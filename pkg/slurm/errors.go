package slurm

/*
#include <slurm/slurm.h>
#include <slurm/slurm_errno.h>
*/
import "C"

import (
	"fmt"
	"strings"
)

// Errno is a raw Slurm error number.
type Errno int32

// Specifically-enumerated error numbers that general callers are expected
// to care about. Anything else comes through as an Error carrying the raw
// number.
const (
	// ErrnoInvalidJobID means the job id did not correspond to a valid job.
	ErrnoInvalidJobID Errno = C.ESLURM_INVALID_JOB_ID
	// ErrnoInvalidPartitionName means the partition name was not recognized.
	ErrnoInvalidPartitionName Errno = C.ESLURM_INVALID_PARTITION_NAME
)

// Error is a failure reported by the Slurm API.
type Error struct {
	Errno Errno
}

// Well-known errors, for use with errors.Is.
var (
	ErrInvalidJobID         = &Error{Errno: ErrnoInvalidJobID}
	ErrInvalidPartitionName = &Error{Errno: ErrnoInvalidPartitionName}
)

// Error renders the Slurm-provided message for the error number. The
// message is decoded lossily; rendering never fails.
func (e *Error) Error() string {
	msg := strings.ToValidUTF8(C.GoString(C.slurm_strerror(C.int(e.Errno))), "�")
	return fmt.Sprintf("%s (slurm errno %d)", msg, int32(e.Errno))
}

// Is matches any *Error with the same error number, so
// errors.Is(err, ErrInvalidJobID) works across wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Errno == e.Errno
}

// lastError reads Slurm's errno register and maps it. The register is
// global foreign state: read it immediately after the failing call and
// never speculatively.
func lastError() error {
	return &Error{Errno: Errno(C.slurm_get_errno())}
}

// status converts a Slurm status return code. Most API calls return zero
// on success and -1 on failure, leaving the real error number in the errno
// register; the return code itself is not the error number.
func status(rc C.int) error {
	if rc != 0 {
		return lastError()
	}
	return nil
}

// statusIsErrno handles the odd call out whose return value is itself an
// error number rather than a status flag, so the errno register must not
// be consulted.
func statusIsErrno(rc C.int) error {
	if rc != 0 {
		return &Error{Errno: Errno(rc)}
	}
	return nil
}

// cstr lossily decodes a C string field that may be null.
func cstr(p *C.char) string {
	if p == nil {
		return ""
	}
	return strings.ToValidUTF8(C.GoString(p), "�")
}
