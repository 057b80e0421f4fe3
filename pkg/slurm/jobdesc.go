package slurm

/*
#include <slurm/slurm.h>
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"
)

// JobDescriptor is a borrowed view of a batch job submission descriptor.
type JobDescriptor struct {
	c *C.job_desc_msg_t
}

func (JobDescriptor) wrap(p unsafe.Pointer) JobDescriptor {
	return JobDescriptor{c: (*C.job_desc_msg_t)(p)}
}
func (v JobDescriptor) raw() unsafe.Pointer { return unsafe.Pointer(v.c) }

// Name returns the job name set on the descriptor.
func (v JobDescriptor) Name() string { return cstr(v.c.name) }

// Script returns the batch script body set on the descriptor.
func (v JobDescriptor) Script() string { return cstr(v.c.script) }

// NumTasks returns the task count, or nil while unset.
func (v JobDescriptor) NumTasks() *uint32 {
	return rawU32OrNone(uint32(v.c.num_tasks))
}

// UserID returns the uid the job will run as.
func (v JobDescriptor) UserID() uint32 { return uint32(v.c.user_id) }

// GroupID returns the gid the job will run as.
func (v JobDescriptor) GroupID() uint32 { return uint32(v.c.group_id) }

// OwnedJobDescriptor owns a descriptor plus every foreign string and array
// hung off it. Close releases the sub-fields before the structure itself,
// in the order the library expects.
type OwnedJobDescriptor struct {
	JobDescriptor
}

// NewJobDescriptor allocates a descriptor initialized with the library's
// defaults.
func NewJobDescriptor() *OwnedJobDescriptor {
	c := allocZeroed[C.job_desc_msg_t]()
	C.slurm_init_job_desc_msg(c)
	return &OwnedJobDescriptor{JobDescriptor{c: c}}
}

// SetName sets the job name.
func (d *OwnedJobDescriptor) SetName(name string) *OwnedJobDescriptor {
	setCString(&d.c.name, name)
	return d
}

// SetScript sets the batch script body.
func (d *OwnedJobDescriptor) SetScript(script string) *OwnedJobDescriptor {
	setCString(&d.c.script, script)
	return d
}

// SetPartition requests a specific cluster partition.
func (d *OwnedJobDescriptor) SetPartition(partition string) *OwnedJobDescriptor {
	setCString(&d.c.partition, partition)
	return d
}

// SetArgv sets the command-line arguments passed to the script.
func (d *OwnedJobDescriptor) SetArgv(argv []string) *OwnedJobDescriptor {
	freeStringArray(&d.c.argv, uint32(d.c.argc))
	arr, n := allocStringArray(argv)
	d.c.argv = arr
	d.c.argc = C.uint32_t(n)
	return d
}

// InheritEnvironment copies this process's environment into the
// descriptor. The controller rejects batch submissions with no environment
// at all, so most callers want this.
func (d *OwnedJobDescriptor) InheritEnvironment() *OwnedJobDescriptor {
	return d.SetEnvironment(os.Environ())
}

// SetEnvironment sets the job's environment to the given KEY=VALUE list.
func (d *OwnedJobDescriptor) SetEnvironment(env []string) *OwnedJobDescriptor {
	freeStringArray(&d.c.environment, uint32(d.c.env_size))
	arr, n := allocStringArray(env)
	d.c.environment = arr
	d.c.env_size = C.uint32_t(n)
	return d
}

// SetStdinPath sets the path connected to the job's standard input.
func (d *OwnedJobDescriptor) SetStdinPath(path string) *OwnedJobDescriptor {
	setCString(&d.c.std_in, path)
	return d
}

// SetStdoutPath sets the path receiving the job's standard output.
func (d *OwnedJobDescriptor) SetStdoutPath(path string) *OwnedJobDescriptor {
	setCString(&d.c.std_out, path)
	return d
}

// SetStderrPath sets the path receiving the job's standard error.
func (d *OwnedJobDescriptor) SetStderrPath(path string) *OwnedJobDescriptor {
	setCString(&d.c.std_err, path)
	return d
}

// SetWorkDir sets the job's working directory.
func (d *OwnedJobDescriptor) SetWorkDir(path string) *OwnedJobDescriptor {
	setCString(&d.c.work_dir, path)
	return d
}

// SetWorkDirCwd sets the job's working directory to this process's current
// directory.
func (d *OwnedJobDescriptor) SetWorkDirCwd() (*OwnedJobDescriptor, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return d, fmt.Errorf("resolving working directory: %w", err)
	}
	return d.SetWorkDir(cwd), nil
}

// SetNumTasks sets how many tasks the job runs.
func (d *OwnedJobDescriptor) SetNumTasks(n uint32) *OwnedJobDescriptor {
	d.c.num_tasks = C.uint32_t(n)
	return d
}

// SetUIDCurrent makes the job run as this process's uid.
func (d *OwnedJobDescriptor) SetUIDCurrent() *OwnedJobDescriptor {
	d.c.user_id = C.uint32_t(os.Getuid())
	return d
}

// SetGIDCurrent makes the job run as this process's gid.
func (d *OwnedJobDescriptor) SetGIDCurrent() *OwnedJobDescriptor {
	d.c.group_id = C.uint32_t(os.Getgid())
	return d
}

// Submit sends the descriptor to the controller as a batch job. The
// returned response message is owned by the caller. Note that the daemon
// can report a nonzero error code next to a perfectly valid job id; both
// are surfaced on the response and the call itself still succeeds.
func (d *OwnedJobDescriptor) Submit() (*SubmitResponse, error) {
	var resp *C.submit_response_msg_t
	if err := status(C.slurm_submit_batch_job(d.c, &resp)); err != nil {
		return nil, fmt.Errorf("submitting batch job: %w", err)
	}
	return &SubmitResponse{c: resp}, nil
}

// Close frees the descriptor's owned sub-fields, then the descriptor.
// Idempotent.
func (d *OwnedJobDescriptor) Close() error {
	if d.c == nil {
		return nil
	}
	xfreeChar(&d.c.name)
	xfreeChar(&d.c.script)
	xfreeChar(&d.c.partition)
	xfreeChar(&d.c.std_err)
	xfreeChar(&d.c.std_in)
	xfreeChar(&d.c.std_out)
	xfreeChar(&d.c.work_dir)
	freeStringArray(&d.c.argv, uint32(d.c.argc))
	d.c.argc = 0
	freeStringArray(&d.c.environment, uint32(d.c.env_size))
	d.c.env_size = 0
	p := unsafe.Pointer(d.c)
	xfree(&p)
	d.c = nil
	return nil
}

// SubmitResponse owns the controller's response to a batch submission.
type SubmitResponse struct {
	c *C.submit_response_msg_t
}

// JobID returns the id assigned to the new job. It can be valid even when
// ErrorCode is nonzero; the interaction is not well understood upstream,
// so both are reported and the caller decides.
func (r *SubmitResponse) JobID() JobID {
	return JobID(r.c.job_id)
}

// ErrorCode returns the daemon-side error carried by the response, or nil
// when the response carries none.
func (r *SubmitResponse) ErrorCode() error {
	if r.c.error_code == 0 {
		return nil
	}
	return &Error{Errno: Errno(r.c.error_code)}
}

// Close frees the response message. Idempotent.
func (r *SubmitResponse) Close() error {
	if r.c != nil {
		C.slurm_free_submit_response_response_msg(r.c)
		r.c = nil
	}
	return nil
}
