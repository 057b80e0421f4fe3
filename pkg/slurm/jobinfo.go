package slurm

/*
#include <slurm/slurm.h>
*/
import "C"

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/slurmplus/goslurm/internal/rawconv"
)

// JobInfo is a borrowed view of information about a job still known to the
// controller. It is owned by the JobInfoMessage it was read from and is
// valid only while that message is open.
type JobInfo struct {
	c *C.job_info_t
}

func (JobInfo) wrap(p unsafe.Pointer) JobInfo { return JobInfo{c: (*C.job_info_t)(p)} }
func (v JobInfo) raw() unsafe.Pointer         { return unsafe.Pointer(v.c) }

// JobID returns this job's id.
func (v JobInfo) JobID() JobID {
	return JobID(v.c.job_id)
}

// Name returns the job's name.
func (v JobInfo) Name() string {
	return cstr(v.c.name)
}

// Partition returns the cluster partition on which the job resides.
func (v JobInfo) Partition() string {
	return cstr(v.c.partition)
}

// UserID returns the numeric uid of the submitting user.
func (v JobInfo) UserID() uint32 {
	return uint32(v.c.user_id)
}

// State returns the job's base scheduling state.
func (v JobInfo) State() JobState {
	return stateFromC(uint32(v.c.job_state))
}

// SubmitTime returns when the job was submitted, or nil if the field is
// unset.
func (v JobInfo) SubmitTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.submit_time))
}

// StartTime returns when the job started, or nil if it has not.
func (v JobInfo) StartTime() *time.Time {
	return rawconv.TimeOrNone(int64(v.c.start_time))
}

// JobInfoMessage owns a job information response from the controller and
// must be closed exactly once. The JobInfo views it hands out borrow from
// it.
type JobInfoMessage struct {
	c *C.job_info_msg_t
}

// LoadJob fetches information about a single job. The job must still be
// known to the controller: querying a job that existed but has left the
// queue yields ErrInvalidJobID.
func LoadJob(id JobID) (*JobInfoMessage, error) {
	var msg *C.job_info_msg_t
	if err := status(C.slurm_load_job(&msg, C.uint32_t(id), 0)); err != nil {
		return nil, fmt.Errorf("loading info for job %d: %w", id, err)
	}
	m := &JobInfoMessage{c: msg}
	if n := uint32(msg.record_count); n != 1 {
		m.Close()
		return nil, fmt.Errorf("expected exactly one info record for job %d; got %d", id, n)
	}
	return m, nil
}

// LoadJobs fetches information about every job the controller knows.
func LoadJobs() (*JobInfoMessage, error) {
	var msg *C.job_info_msg_t
	if err := status(C.slurm_load_jobs(0, &msg, 0)); err != nil {
		return nil, fmt.Errorf("loading job list: %w", err)
	}
	return &JobInfoMessage{c: msg}, nil
}

// RecordCount reports how many job records the message carries.
func (m *JobInfoMessage) RecordCount() int {
	return int(m.c.record_count)
}

// Job returns the borrowed record inside a single-job message. This is a
// zero-copy view of the message's record array.
func (m *JobInfoMessage) Job() JobInfo {
	return JobInfo{c: m.c.job_array}
}

// Jobs returns borrowed views of every record in the message.
func (m *JobInfoMessage) Jobs() []JobInfo {
	n := m.RecordCount()
	if n == 0 || m.c.job_array == nil {
		return nil
	}
	recs := unsafe.Slice(m.c.job_array, n)
	out := make([]JobInfo, n)
	for i := range recs {
		out[i] = JobInfo{c: &recs[i]}
	}
	return out
}

// Close frees the message and with it every view read from it. Idempotent.
func (m *JobInfoMessage) Close() error {
	if m.c != nil {
		C.slurm_free_job_info_msg(m.c)
		m.c = nil
	}
	return nil
}
