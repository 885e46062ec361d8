package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobLifecycle(t *testing.T) {
	j := Manager.CreateJob("pikachu")
	require.NotEmpty(t, j.ID)
	require.Equal(t, StatusPending, j.Status)
	require.Equal(t, "pikachu", j.Query)

	Manager.Update(j.ID, func(job *Job) {
		job.Status = StatusFinished
		job.Result = "done"
	})

	got, ok := Manager.Get(j.ID)
	require.True(t, ok)
	require.Equal(t, StatusFinished, got.Status)
	require.Equal(t, "done", got.Result)

	// Get hands back a copy; mutating it must not touch the stored job.
	got.Status = StatusError
	again, _ := Manager.Get(j.ID)
	require.Equal(t, StatusFinished, again.Status)
}

func TestGet_UnknownID(t *testing.T) {
	_, ok := Manager.Get("nope")
	require.False(t, ok)
}
