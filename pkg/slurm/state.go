package slurm

/*
#include <slurm/slurm.h>
*/
import "C"

// JobState is the base scheduling state of a job, with any flag bits
// masked off.
type JobState int

const (
	StatePending JobState = iota
	StateRunning
	StateSuspended
	StateComplete
	StateCancelled
	StateFailed
	StateTimeout
	StateNodeFail
	StatePreempted
	StateBootFail
	StateDeadline
	StateOutOfMemory
	// StateUnknown covers base state numbers this build does not know
	// about, either because the daemon is newer than the headers we were
	// compiled against or vice versa.
	StateUnknown
)

var stateNames = map[JobState]string{
	StatePending:     "Pending",
	StateRunning:     "Running",
	StateSuspended:   "Suspended",
	StateComplete:    "Complete",
	StateCancelled:   "Cancelled",
	StateFailed:      "Failed",
	StateTimeout:     "Timeout",
	StateNodeFail:    "NodeFail",
	StatePreempted:   "Preempted",
	StateBootFail:    "BootFail",
	StateDeadline:    "Deadline",
	StateOutOfMemory: "OutOfMemory",
	StateUnknown:     "Unknown",
}

// squeue-style state shortcodes.
var stateShortcodes = map[JobState]string{
	StatePending:     "PD",
	StateRunning:     "R",
	StateSuspended:   "S",
	StateComplete:    "CD",
	StateCancelled:   "CA",
	StateFailed:      "F",
	StateTimeout:     "TO",
	StateNodeFail:    "NF",
	StatePreempted:   "PR",
	StateBootFail:    "BF",
	StateDeadline:    "DL",
	StateOutOfMemory: "OOM",
	StateUnknown:     "??",
}

func (s JobState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Shortcode returns the squeue-style abbreviation for the state.
func (s JobState) Shortcode() string {
	if c, ok := stateShortcodes[s]; ok {
		return c
	}
	return "??"
}

// baseStates maps Slurm's base state numbers to JobState values. States
// that do not exist in every supported header version are registered by
// the capability-gated files.
var baseStates = map[uint32]JobState{
	uint32(C.JOB_PENDING):   StatePending,
	uint32(C.JOB_RUNNING):   StateRunning,
	uint32(C.JOB_SUSPENDED): StateSuspended,
	uint32(C.JOB_COMPLETE):  StateComplete,
	uint32(C.JOB_CANCELLED): StateCancelled,
	uint32(C.JOB_FAILED):    StateFailed,
	uint32(C.JOB_TIMEOUT):   StateTimeout,
	uint32(C.JOB_NODE_FAIL): StateNodeFail,
	uint32(C.JOB_PREEMPTED): StatePreempted,
	uint32(C.JOB_BOOT_FAIL): StateBootFail,
}

// stateFromC masks the raw state word down to its base state and maps it.
func stateFromC(raw uint32) JobState {
	if s, ok := baseStates[raw&uint32(C.JOB_STATE_BASE)]; ok {
		return s
	}
	return StateUnknown
}
