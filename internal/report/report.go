// Package report renders job summaries for the CLI. It works on plain
// structs so the formatting logic can be tested without a Slurm
// installation.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/slurmplus/goslurm/internal/colorio"
)

// JobSummary is one accounting record reduced to the fields the recent
// listing needs.
type JobSummary struct {
	// GroupID is the array job id when the record belongs to a job
	// array, otherwise the plain job id.
	GroupID uint32
	Name    string
	Submit  time.Time
	// StateCode is the short state code, e.g. "PD" or "CD".
	StateCode string
}

// GroupInfo aggregates every record sharing a GroupID.
type GroupInfo struct {
	ID         uint32
	Name       string
	Submit     time.Time
	SubmitText string
	Count      int
	// StateCounts maps a state shortcode to how many records carry it.
	StateCounts map[string]int
}

// GroupRecent buckets summaries by GroupID, orders the groups by submit
// time, and keeps only the newest limit groups. A limit of zero keeps
// none.
func GroupRecent(jobs []JobSummary, now time.Time, limit int) []GroupInfo {
	grouped := make(map[uint32]*GroupInfo)
	for _, job := range jobs {
		info, ok := grouped[job.GroupID]
		if !ok {
			info = &GroupInfo{
				ID:          job.GroupID,
				Name:        job.Name,
				Submit:      job.Submit,
				SubmitText:  DurToText(now.Sub(job.Submit)),
				StateCounts: make(map[string]int),
			}
			grouped[job.GroupID] = info
		}
		info.Count++
		info.StateCounts[job.StateCode]++
	}

	out := make([]GroupInfo, 0, len(grouped))
	for _, info := range grouped {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Submit.Before(out[j].Submit) })

	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// RenderRecent prints one line per group with aligned columns.
func RenderRecent(cio *colorio.CIO, groups []GroupInfo) {
	var maxName, maxTime int
	for _, g := range groups {
		if len(g.Name) > maxName {
			maxName = len(g.Name)
		}
		if len(g.SubmitText) > maxTime {
			maxTime = len(g.SubmitText)
		}
	}

	for _, g := range groups {
		cio.Print(colorio.Highlight, "%d", g.ID)
		cio.Print(colorio.Plain, " %-*s", maxName, g.Name)
		cio.Print(colorio.Plain, "  %-*s ", maxTime+4, g.SubmitText+" ago")

		if g.Count == 1 {
			for code := range g.StateCounts {
				cio.Print(colorio.Plain, " ")
				cio.Print(StyleForShortcode(code), "%s", code)
			}
			cio.Println(colorio.Plain, "")
			continue
		}

		codes := make([]string, 0, len(g.StateCounts))
		for code := range g.StateCounts {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		for i, code := range codes {
			if i > 0 {
				cio.Print(colorio.Plain, ",")
			}
			cio.Print(colorio.Plain, " %d ", g.StateCounts[code])
			cio.Print(StyleForShortcode(code), "%s", code)
		}
		cio.Println(colorio.Plain, " (%d total)", g.Count)
	}
}

// StatusStep is one step of a job in the status listing.
type StatusStep struct {
	ID           string
	Name         string
	Start        *time.Time
	Wallclock    *time.Duration
	ExitCode     *int32
	MaxVMSizeKiB *uint64
}

// StatusJob is one job in the status listing.
type StatusJob struct {
	ID     uint32
	Name   string
	Submit time.Time
	// Eligible is when the job became eligible to run; nil while the
	// scheduler is still holding it back.
	Eligible *time.Time
	Start    *time.Time
	// EligibleWait spans submission to eligibility, Wait spans
	// eligibility to start. Either is nil when its endpoint is unset.
	EligibleWait *time.Duration
	Wait         *time.Duration
	// TimeLimitMinutes is the job's wallclock allocation in minutes.
	TimeLimitMinutes uint32
	Steps            []StatusStep
}

// RenderStatus prints a sacct-like breakdown of each job's scheduling
// timeline and its steps.
func RenderStatus(cio *colorio.CIO, jobs []StatusJob, now time.Time) {
	for _, job := range jobs {
		cio.Print(colorio.Highlight, "%d", job.ID)
		cio.Println(colorio.Plain, " %s", job.Name)

		if job.EligibleWait != nil {
			cio.Println(colorio.Plain, "  time for job to become eligible to run: %d s",
				int64(job.EligibleWait.Seconds()))
		} else {
			wait := now.Sub(job.Submit)
			cio.Println(colorio.Plain, "  job not yet eligible to run; time since submission: %d s",
				int64(wait.Seconds()))
			continue
		}

		switch {
		case job.Wait != nil:
			cio.Println(colorio.Plain, "  wait time after eligibility: %d s",
				int64(job.Wait.Seconds()))
		case job.Eligible != nil:
			wait := now.Sub(*job.Eligible)
			cio.Println(colorio.Plain, "  job not yet started; time since eligibility: %d s",
				int64(wait.Seconds()))
			continue
		}

		if job.Start != nil {
			limit := job.Start.Add(time.Duration(job.TimeLimitMinutes) * time.Minute)
			remaining := int64(limit.Sub(now).Minutes())
			if remaining > 0 {
				cio.Println(colorio.Plain, "  time left until job hits time limit: %d min", remaining)
			}
		}

		for _, step := range job.Steps {
			renderStep(cio, step, now)
		}
	}
}

func renderStep(cio *colorio.CIO, step StatusStep, now time.Time) {
	cio.Print(colorio.Highlight, "  step %s", step.ID)
	cio.Println(colorio.Plain, " %s", step.Name)

	switch {
	case step.Wallclock != nil:
		cio.Println(colorio.Plain, "    wallclock runtime: %d s", int64(step.Wallclock.Seconds()))
		if step.ExitCode != nil {
			cio.Println(colorio.Plain, "    exit code: %d", *step.ExitCode)
		}
	case step.Start != nil:
		wait := now.Sub(*step.Start)
		cio.Println(colorio.Plain, "    step not yet finished; time since start: %d s",
			int64(wait.Seconds()))
	default:
		cio.Println(colorio.Plain, "    step not yet finished")
	}

	if step.MaxVMSizeKiB != nil {
		cio.Println(colorio.Plain, "    max VM size: %.2f MiB", float64(*step.MaxVMSizeKiB)/1024.)
	} else {
		cio.Println(colorio.Plain, "    max VM size not available (probably because step not finished)")
	}
}

// DurToText expresses a duration in approximate human terms.
func DurToText(d time.Duration) string {
	days := int64(d.Hours()) / 24
	switch {
	case days > 2:
		return fmt.Sprintf("%d days", days)
	case int64(d.Hours()) > 2:
		return fmt.Sprintf("%d hours", int64(d.Hours()))
	case int64(d.Minutes()) > 2:
		return fmt.Sprintf("%d minutes", int64(d.Minutes()))
	default:
		return fmt.Sprintf("%d seconds", int64(d.Seconds()))
	}
}

// StyleForShortcode picks the affective color for a state shortcode.
func StyleForShortcode(code string) colorio.Style {
	switch code {
	case "PD":
		return colorio.Plain
	case "R":
		return colorio.Highlight
	case "CD":
		return colorio.Green
	case "CA", "F", "NF", "BF", "DL", "OOM":
		return colorio.Red
	case "S", "TO", "PR":
		return colorio.Yellow
	default:
		return colorio.Plain
	}
}
