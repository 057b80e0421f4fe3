// Package slurm exposes the Slurm workload manager's C libraries
// (libslurm, libslurmdb) to Go programs.
//
// # Ownership model
//
// Almost every value handed out by this package is one of two kinds of
// wrapper around foreign-allocated memory:
//
//   - A view (JobInfo, JobRecord, StepRecord, JobFilters, ...) holds a bare
//     pointer into memory owned by something else, usually the message or
//     list it was read from. Views are cheap, copyable, and never free
//     anything. A view is valid only while its owner is still open.
//
//   - An owned wrapper (JobInfoMessage, OwnedJobDescriptor, OwnedJobFilters,
//     SubmitResponse, DatabaseConnection, OwnedList, ListIterator) is
//     responsible for invoking the matching foreign deallocation routine
//     exactly once, from Close. Close is idempotent, and moving ownership
//     into a foreign container (for example appending a filter to a list)
//     nulls the wrapper so a later Close is a no-op. Owned wrappers must
//     not be copied: at most one owner may exist per live handle.
//
// Callers are expected to pair every constructor with a deferred Close so
// the release path runs on every exit path. Nothing here relies on
// finalizers or garbage-collection timing.
//
// # Memory
//
// All allocations go through Slurm's own allocator (slurm_xmalloc and
// friends), never Go's or libc's directly, because memory crosses the API
// boundary in both directions and must be freeable by either side. Slurm
// has no graceful out-of-memory path, and neither does this package:
// allocator exhaustion panics.
//
// # Thread safety
//
// The binding is synchronous and assumes single-threaded use. Failing
// calls are diagnosed by reading Slurm's global errno register immediately
// afterwards; whether that register and the allocator tolerate concurrent
// callers is a property of the installed libslurm that this package does
// not verify. Serialize access yourself if in doubt.
//
// # Version-dependent API surface
//
// Parts of the C API come and go across Slurm releases. Accessors for
// version-dependent fields are compiled in only under the matching build
// tags; run tools/slurmfeatures against the installed headers to find out
// which tags apply:
//
//	go build -tags "$(go run ./tools/slurmfeatures)" ./...
package slurm
