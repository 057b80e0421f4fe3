package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const modernSlurmH = `
enum job_states {
	JOB_PENDING,	/* queued waiting for initiation */
	JOB_RUNNING,	/* allocated resources and executing */
	JOB_SUSPENDED,	/* allocated resources, execution suspended */
	JOB_COMPLETE,	/* completed execution successfully */
	JOB_CANCELLED,	/* cancelled by user */
	JOB_FAILED,	/* completed execution unsuccessfully */
	JOB_TIMEOUT,	/* terminated on reaching time limit */
	JOB_NODE_FAIL,	/* terminated on node failure */
	JOB_PREEMPTED,	/* terminated due to preemption */
	JOB_BOOT_FAIL,	/* terminated due to node boot failure */
	JOB_DEADLINE,	/* terminated on deadline */
	JOB_OOM,	/* experienced out of memory error */
	JOB_END		/* not a real state, last entry in table */
};

typedef struct submit_response_msg {
	uint32_t job_id;	/* job ID */
	uint32_t step_id;	/* step ID */
	uint32_t error_code;	/* error code for warning message */
	char *job_submit_user_msg; /* job submit plugin user_msg */
} submit_response_msg_t;
`

const modernSlurmdbH = `
typedef struct {
	uint32_t array_task_id;	/* task_id of a job array or NO_VAL */
	uint32_t jobid;
	uint32_t pack_job_offset; /* pack_job_offset of a job or NO_VAL */
	uint32_t stepid;
} slurmdb_selected_step_t;
`

const oldSlurmH = `
enum job_states {
	JOB_PENDING,
	JOB_RUNNING,
	JOB_SUSPENDED,
	JOB_COMPLETE,
	JOB_CANCELLED,
	JOB_FAILED,
	JOB_TIMEOUT,
	JOB_NODE_FAIL,
	JOB_PREEMPTED,
	JOB_BOOT_FAIL,
	JOB_END
};

typedef struct submit_response_msg {
	uint32_t job_id;
	uint32_t step_id;
	uint32_t error_code;
} submit_response_msg_t;
`

const oldSlurmdbH = `
typedef struct {
	uint32_t array_task_id;
	uint32_t jobid;
	uint32_t stepid;
} slurmdb_selected_step_t;
`

func TestScanFeaturesModernHeaders(t *testing.T) {
	tags := ScanFeatures(modernSlurmH, modernSlurmdbH)

	assert.Equal(t, []string{
		"slurm_api_job_state_deadline",
		"slurm_api_job_state_oom",
		"slurm_api_selected_step_pack_job_offset",
		"slurm_api_submit_response_user_message",
	}, tags)
}

func TestScanFeaturesOldHeaders(t *testing.T) {
	assert.Empty(t, ScanFeatures(oldSlurmH, oldSlurmdbH))
}

func TestStructBodyFindsAnonymousTypedef(t *testing.T) {
	body, ok := structBody(modernSlurmdbH, "slurmdb_selected_step_t")
	assert.True(t, ok)
	assert.Contains(t, body, "array_task_id")
}

func TestStructBodyMissing(t *testing.T) {
	_, ok := structBody(modernSlurmdbH, "no_such_struct_t")
	assert.False(t, ok)
}

func TestHasIdentWholeWordOnly(t *testing.T) {
	assert.True(t, hasIdent("char *job_submit_user_msg;", "job_submit_user_msg"))
	assert.False(t, hasIdent("} submit_response_msg_t;", "submit_response_msg"))
	assert.True(t, hasIdent("typedef struct submit_response_msg {", "submit_response_msg"))
}
