package metadomain

// Status assíncronos reportados pela API do Meta para um report run
const (
	RunStatusNotStarted = "Job Not Started"
	RunStatusStarted    = "Job Started"
	RunStatusRunning    = "Job Running"
	RunStatusCompleted  = "Job Completed"
	RunStatusFailed     = "Job Failed"
	RunStatusSkipped    = "Job Skipped"
)

// ReportRun é o handle devolvido ao criar um report run assíncrono
type ReportRun struct {
	ReportRunID string `json:"report_run_id"`
}

// ReportRunStatus é a resposta de consulta de status de um report run.
// O percentual de conclusão é o único diagnóstico disponível para runs
// que terminam em falha.
type ReportRunStatus struct {
	ID                     string `json:"id"`
	AsyncStatus            string `json:"async_status"`
	AsyncPercentCompletion int    `json:"async_percent_completion"`
}

// IsDone indica se o run chegou a um status terminal no lado remoto
func (s *ReportRunStatus) IsDone() bool {
	switch s.AsyncStatus {
	case RunStatusCompleted, RunStatusFailed, RunStatusSkipped:
		return true
	}
	return false
}
