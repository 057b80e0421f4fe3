//go:build slurm_api_job_state_deadline

package slurm

/*
#include <slurm/slurm.h>
*/
import "C"

func init() {
	baseStates[uint32(C.JOB_DEADLINE)] = StateDeadline
}
