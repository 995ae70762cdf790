package domain

// JobStatus é o estado de um report job assíncrono no Meta
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusSkipped   JobStatus = "skipped"
)

// IsTerminal indica se o job saiu do conjunto ativo. Não existe transição
// de volta a partir de um estado terminal.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusSkipped
}

// ReportJob acompanha um report run assíncrono submetido para uma conta
type ReportJob struct {
	Target      AccountTarget `json:"target"`
	ReportRunID string        `json:"report_run_id"`
	Status      JobStatus     `json:"status"`
	LastError   string        `json:"last_error,omitempty"`
}
