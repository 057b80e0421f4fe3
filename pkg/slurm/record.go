package slurm

/*
#include <slurm/slurmdb.h>
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/slurmplus/goslurm/internal/rawconv"
)

func rawU32OrNone(v uint32) *uint32 {
	return rawconv.U32OrNone(v, NoVal)
}

// JobStepRecordSharedFields is the accessor set the accounting database
// duplicates between job-level and step-level records. Both JobRecord and
// StepRecord implement it, so code that only needs these fields can treat
// the two uniformly.
type JobStepRecordSharedFields interface {
	// StartTime returns when execution began, or nil if it has not.
	StartTime() *time.Time
	// EndTime returns when execution finished, or nil if it has not.
	EndTime() *time.Time
	// WallclockDuration returns end minus start, present only when both
	// endpoints are.
	WallclockDuration() *time.Duration
	// ExitCode returns the decoded exit code, nil until the record has an
	// end time.
	ExitCode() *int32
	// State returns the base scheduling state.
	State() JobState
	// MaxVMSize returns the peak virtual memory size in kibibytes, or nil
	// when the accounting gatherer has not reported one (typically because
	// the record is not finished).
	MaxVMSize() *uint64
}

var (
	_ JobStepRecordSharedFields = JobRecord{}
	_ JobStepRecordSharedFields = StepRecord{}
)

// JobRecord is a borrowed view of one job's accounting record, owned by
// the list it was queried into.
type JobRecord struct {
	c *C.slurmdb_job_rec_t
}

func (JobRecord) wrap(p unsafe.Pointer) JobRecord {
	return JobRecord{c: (*C.slurmdb_job_rec_t)(p)}
}
func (v JobRecord) raw() unsafe.Pointer { return unsafe.Pointer(v.c) }

// JobID returns the job's id.
func (v JobRecord) JobID() JobID {
	return JobID(v.c.jobid)
}

// JobName returns the job's name.
func (v JobRecord) JobName() string {
	return cstr(v.c.jobname)
}

// Partition returns the partition the job ran in.
func (v JobRecord) Partition() string {
	return cstr(v.c.partition)
}

// ArrayJobID returns the enclosing array job's id, or nil for jobs that
// are not array tasks.
func (v JobRecord) ArrayJobID() *JobID {
	if v.c.array_job_id == 0 {
		return nil
	}
	id := JobID(v.c.array_job_id)
	return &id
}

// SubmitTime returns when the job was submitted, or nil if unset.
func (v JobRecord) SubmitTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.submit))
}

// EligibleTime returns when the job became eligible to run, or nil if it
// has not yet.
func (v JobRecord) EligibleTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.eligible))
}

// StartTime returns when the job started running, or nil if it has not.
func (v JobRecord) StartTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.start))
}

// EndTime returns when the job finished, or nil if it has not.
func (v JobRecord) EndTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.end))
}

// EligibleWaitDuration returns the time between submission and the job
// becoming eligible to run, present only when both endpoints are set.
func (v JobRecord) EligibleWaitDuration() *time.Duration {
	return rawconv.DurationBetween(v.SubmitTime(), v.EligibleTime())
}

// WaitDuration returns the time the job waited between becoming eligible
// and starting, present only when both endpoints are set.
func (v JobRecord) WaitDuration() *time.Duration {
	return rawconv.DurationBetween(v.EligibleTime(), v.StartTime())
}

// WallclockDuration returns the job's wallclock runtime, present only
// once the job has both started and finished.
func (v JobRecord) WallclockDuration() *time.Duration {
	return rawconv.DurationBetween(v.StartTime(), v.EndTime())
}

// TimeLimit returns the job's time limit in minutes, or nil if none was
// recorded.
func (v JobRecord) TimeLimit() *uint32 {
	return rawU32OrNone(uint32(v.c.timelimit))
}

// ExitCode returns the job's decoded exit code, nil until the job has an
// end time.
func (v JobRecord) ExitCode() *int32 {
	return rawconv.ExitCode(int32(v.c.exitcode), v.EndTime() != nil)
}

// State returns the job's base scheduling state.
func (v JobRecord) State() JobState {
	return stateFromC(uint32(v.c.state))
}

// MaxVMSize returns the job's peak virtual memory size in kibibytes, or
// nil when not reported.
func (v JobRecord) MaxVMSize() *uint64 {
	return rawconv.VMSize(uint64(v.c.stats.vsize_max), NoVal64)
}

// Steps returns the borrowed list of the job's step records. The steps
// borrow from the same owner as the job record itself.
func (v JobRecord) Steps() List[StepRecord] {
	return List[StepRecord]{handle: &v.c.steps}
}

// StepRecord is a borrowed view of one job step's accounting record.
type StepRecord struct {
	c *C.slurmdb_step_rec_t
}

func (StepRecord) wrap(p unsafe.Pointer) StepRecord {
	return StepRecord{c: (*C.slurmdb_step_rec_t)(p)}
}
func (v StepRecord) raw() unsafe.Pointer { return unsafe.Pointer(v.c) }

// StepID returns the step's id within its job.
func (v StepRecord) StepID() uint32 {
	return uint32(v.c.stepid)
}

// StepName returns the step's name.
func (v StepRecord) StepName() string {
	return cstr(v.c.stepname)
}

// StartTime returns when the step started, or nil if it has not.
func (v StepRecord) StartTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.start))
}

// EndTime returns when the step finished, or nil if it has not.
func (v StepRecord) EndTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.end))
}

// WallclockDuration returns the step's wallclock runtime, present only
// once the step has both started and finished.
func (v StepRecord) WallclockDuration() *time.Duration {
	return rawconv.DurationBetween(v.StartTime(), v.EndTime())
}

// ExitCode returns the step's decoded exit code, nil until the step has an
// end time.
func (v StepRecord) ExitCode() *int32 {
	return rawconv.ExitCode(int32(v.c.exitcode), v.EndTime() != nil)
}

// State returns the step's base scheduling state.
func (v StepRecord) State() JobState {
	return stateFromC(uint32(v.c.state))
}

// MaxVMSize returns the step's peak virtual memory size in kibibytes, or
// nil when not reported.
func (v StepRecord) MaxVMSize() *uint64 {
	return rawconv.VMSize(uint64(v.c.stats.vsize_max), NoVal64)
}
