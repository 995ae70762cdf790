package domain

import "time"

// RunSummary resume uma execução do pipeline para histórico e status
type RunSummary struct {
	RunID         string    `json:"run_id"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	JobsSubmitted int       `json:"jobs_submitted"`
	JobsCompleted int       `json:"jobs_completed"`
	JobsFailed    int       `json:"jobs_failed"`
	JobsSkipped   int       `json:"jobs_skipped"`
	Rows          int       `json:"rows"`
	OutputPath    string    `json:"output_path,omitempty"`
}
