//go:build slurm_api_submit_response_user_message

package slurm

/*
#include <slurm/slurm.h>
*/
import "C"

// UserMessage returns the message the site's job-submit plugin attached to
// the response, if any.
func (r *SubmitResponse) UserMessage() string {
	return cstr(r.c.job_submit_user_msg)
}
