package slurm

/*
#cgo pkg-config: slurm
#cgo LDFLAGS: -lslurmdb

#include <slurm/slurm.h>
*/
import "C"

// JobID is a job identifier number. Slurm job ids are always unsigned
// 32-bit values.
type JobID uint32

// NoVal is Slurm's reserved "value not set" sentinel for 32-bit numeric
// fields. It is distinct from zero, which is frequently a legal value.
const NoVal uint32 = uint32(C.NO_VAL)

// NoVal64 is the 64-bit counterpart of NoVal.
const NoVal64 uint64 = uint64(C.NO_VAL64)
