package slurm

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to a running cluster. They are skipped unless
// SLURMPLUS_LIVE_TEST=1 is set.
func requireLive(t *testing.T) {
	t.Helper()
	if os.Getenv("SLURMPLUS_LIVE_TEST") == "" {
		t.Skip("set SLURMPLUS_LIVE_TEST=1 to run against a live cluster")
	}
}

func TestLiveDatabaseConnection(t *testing.T) {
	requireLive(t)

	db, err := ConnectDatabase()
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())
}

func TestLiveGetRecentJobs(t *testing.T) {
	requireLive(t)

	filters := NewJobFilters()
	defer filters.Close()
	filters.UseridList().Append(strconv.Itoa(os.Getuid()))
	filters.SetUsageStart(time.Now().Add(-24 * time.Hour))

	db, err := ConnectDatabase()
	require.NoError(t, err)
	defer db.Close()

	jobs, err := db.GetJobs(filters.JobFilters)
	require.NoError(t, err)
	defer jobs.Close()

	it := jobs.Iter()
	defer it.Close()
	for job, ok := it.Next(); ok; job, ok = it.Next() {
		assert.NotZero(t, job.JobID())
	}
}

func TestLiveSubmitBatchJob(t *testing.T) {
	requireLive(t)

	dir := t.TempDir()
	log := filepath.Join(dir, "%j.log")

	d := NewJobDescriptor()
	defer d.Close()

	d.SetName("goslurm-selftest").
		SetArgv([]string{"goslurm-selftest"}).
		InheritEnvironment().
		SetStdinPath("/dev/null").
		SetStdoutPath(log).
		SetStderrPath(log).
		SetWorkDir(dir).
		SetScript("#! /bin/bash\necho hello\n").
		SetNumTasks(1).
		SetUIDCurrent().
		SetGIDCurrent()

	resp, err := d.Submit()
	require.NoError(t, err)
	defer resp.Close()

	// The daemon can attach an error code to an otherwise successful
	// submission; both fields are meaningful.
	if err := resp.ErrorCode(); err != nil {
		var slurmErr *Error
		require.True(t, errors.As(err, &slurmErr))
		assert.NotZero(t, slurmErr.Errno)
		return
	}
	assert.NotZero(t, resp.JobID())
}

func TestLiveLoadJobInvalidID(t *testing.T) {
	requireLive(t)

	// Job ids are assigned sequentially from 1; this one cannot exist.
	_, err := LoadJob(JobID(0xfffff123))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidJobID))
}
