package view

import (
	"context"

	"pokedex/internal/jobs"
)

// RunBackgroundSearch executes a search in the background and updates a Job.
func RunBackgroundSearch(s *Session, job *jobs.Job, query string) {
	jobs.Manager.Update(job.ID, func(j *jobs.Job) {
		j.Status = jobs.StatusRunning
	})

	snap := s.Search(context.Background(), query)
	finishJob(job.ID, snap)
}

// RunBackgroundNavigate executes a navigation step in the background.
func RunBackgroundNavigate(s *Session, job *jobs.Job, offset int) {
	jobs.Manager.Update(job.ID, func(j *jobs.Job) {
		j.Status = jobs.StatusRunning
	})

	snap := s.Navigate(context.Background(), offset)
	finishJob(job.ID, snap)
}

func finishJob(id string, snap Snapshot) {
	if snap.Error != "" {
		jobs.Manager.Update(id, func(j *jobs.Job) {
			j.Status = jobs.StatusError
			j.Error = snap.Error
			j.Result = snap
		})
		return
	}

	jobs.Manager.Update(id, func(j *jobs.Job) {
		j.Status = jobs.StatusFinished
		j.Result = snap
	})
}
