package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCancelAndWait(t *testing.T) {
	t.Run("finishes fast enough", func(t *testing.T) {
		testJobs := Jobs{
			fakeJob("Job A", time.Millisecond*100),
			fakeJob("Job B", time.Millisecond*200),
		}

		before := time.Now()
		unfinished := testJobs.CancelAndWait(time.Second * 1)
		after := time.Now()
		assert.WithinDuration(t, after, before, time.Millisecond*500, "jobs did not finish fast enough")
		assert.Len(t, unfinished, 0)
	})
	t.Run("reports unfinished jobs", func(t *testing.T) {
		testJobs := Jobs{
			fakeJob("Job A", time.Millisecond*100),
			fakeJob("Job B", time.Second*10),
		}

		unfinished := testJobs.CancelAndWait(time.Second * 1)
		assert.Equal(t, []string{"Job B"}, unfinished)
	})
}

func fakeJob(name string, timeout time.Duration) *Job {
	job := New(name)
	go func() {
		<-job.Canceled()
		timer := time.NewTimer(timeout)
		<-timer.C
		job.Finish()
	}()
	return job
}
