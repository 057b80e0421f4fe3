package slurm

/*
#include <slurm/slurm.h>
#include <slurm/slurmdb.h>
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"
)

// DatabaseConnection is an owned handle on a connection to the accounting
// database daemon (slurmdbd).
type DatabaseConnection struct {
	c unsafe.Pointer
}

// ConnectDatabase opens a connection to the accounting database.
func ConnectDatabase() (*DatabaseConnection, error) {
	conn := C.slurmdb_connection_get()
	if conn == nil {
		return nil, fmt.Errorf("connecting to the accounting database: %w", lastError())
	}
	return &DatabaseConnection{c: conn}, nil
}

// Close shuts the connection down. Unusually for this API, the close
// call's return value is itself an error number, so the errno register is
// deliberately not consulted here. Idempotent.
func (db *DatabaseConnection) Close() error {
	if db.c == nil {
		return nil
	}
	rc := C.slurmdb_connection_close(&db.c)
	db.c = nil
	return statusIsErrno(rc)
}

// GetJobs queries accounting records for the jobs matching cond. The
// returned list owns its records; the JobRecord views taken from it borrow
// from the list.
func (db *DatabaseConnection) GetJobs(cond JobFilters) (*OwnedList[JobRecord], error) {
	lst := C.slurmdb_jobs_get(db.c, cond.c)
	if lst == nil {
		return nil, fmt.Errorf("querying job accounting records: %w", lastError())
	}
	return &OwnedList[JobRecord]{c: lst}, nil
}

// JobFilters is a borrowed view of an accounting query condition.
type JobFilters struct {
	c *C.slurmdb_job_cond_t
}

func (JobFilters) wrap(p unsafe.Pointer) JobFilters {
	return JobFilters{c: (*C.slurmdb_job_cond_t)(p)}
}
func (v JobFilters) raw() unsafe.Pointer { return unsafe.Pointer(v.c) }

// UseridList returns the list of uids to filter on. Note that the
// accounting API wants each uid as a string rendering of the numeric id.
func (v JobFilters) UseridList() StringList {
	return StringList{handle: &v.c.userid_list}
}

// StepList returns the job/step selection list.
func (v JobFilters) StepList() List[JobStepFilter] {
	return List[JobStepFilter]{handle: &v.c.step_list, create: newStepFilterList}
}

// SetUsageStart restricts results to jobs running at or after t.
func (v JobFilters) SetUsageStart(t time.Time) {
	v.c.usage_start = C.time_t(t.Unix())
}

// SetUsageEnd restricts results to jobs running at or before t.
func (v JobFilters) SetUsageEnd(t time.Time) {
	v.c.usage_end = C.time_t(t.Unix())
}

// OwnedJobFilters owns the condition structure and every list hung off it.
type OwnedJobFilters struct {
	JobFilters
}

// NewJobFilters allocates an empty condition. Usage truncation is disabled
// by default, matching sacct's reporting behavior: jobs are reported with
// their real start and end times rather than clamped to the usage window.
func NewJobFilters() *OwnedJobFilters {
	c := allocZeroed[C.slurmdb_job_cond_t]()
	c.without_usage_truncation = 1
	return &OwnedJobFilters{JobFilters{c: c}}
}

// Close frees the condition and its lists. Idempotent.
func (f *OwnedJobFilters) Close() error {
	if f.c != nil {
		C.slurmdb_destroy_job_cond(unsafe.Pointer(f.c))
		f.c = nil
	}
	return nil
}

// JobStepFilter selects one job, and optionally specific steps of it, in
// an accounting query.
type JobStepFilter struct {
	c *C.slurmdb_selected_step_t
}

func (JobStepFilter) wrap(p unsafe.Pointer) JobStepFilter {
	return JobStepFilter{c: (*C.slurmdb_selected_step_t)(p)}
}
func (v JobStepFilter) raw() unsafe.Pointer { return unsafe.Pointer(v.c) }

// JobID returns the job id the filter selects.
func (v JobStepFilter) JobID() JobID {
	return JobID(v.c.jobid)
}

// StepID returns the selected step id, or nil when the filter matches
// every step.
func (v JobStepFilter) StepID() *uint32 {
	return rawU32OrNone(uint32(v.c.stepid))
}

// OwnedJobStepFilter owns a step filter until it is appended to a
// condition's step list, which takes the ownership over.
type OwnedJobStepFilter struct {
	JobStepFilter
}

// NewJobStepFilter allocates a filter matching every step of the job.
func NewJobStepFilter(id JobID) *OwnedJobStepFilter {
	c := allocZeroed[C.slurmdb_selected_step_t]()
	c.jobid = C.uint32_t(id)
	c.stepid = C.uint32_t(NoVal)
	c.array_task_id = C.uint32_t(NoVal)
	initStepFilterExtra(c)
	return &OwnedJobStepFilter{JobStepFilter{c: c}}
}

// release gives up ownership, nulling the handle so a later Close is a
// no-op.
func (f *OwnedJobStepFilter) release() unsafe.Pointer {
	p := unsafe.Pointer(f.c)
	f.c = nil
	return p
}

// Close frees the filter if it is still owned. Idempotent, and a no-op
// after the filter has been appended to a list.
func (f *OwnedJobStepFilter) Close() error {
	if f.c != nil {
		C.slurmdb_destroy_selected_step(unsafe.Pointer(f.c))
		f.c = nil
	}
	return nil
}
