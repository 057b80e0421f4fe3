//go:build !slurm_api_selected_step_pack_job_offset

package slurm

/*
#include <slurm/slurmdb.h>
*/
import "C"

func initStepFilterExtra(c *C.slurmdb_selected_step_t) {}
