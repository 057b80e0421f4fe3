//go:build slurm_api_selected_step_pack_job_offset

package slurm

/*
#include <slurm/slurmdb.h>
*/
import "C"

// Newer releases grew a pack-job offset on the step selector; it must be
// set to the unset sentinel or the query matches nothing.
func initStepFilterExtra(c *C.slurmdb_selected_step_t) {
	c.pack_job_offset = C.uint32_t(NoVal)
}
