package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os contadores Prometheus do pipeline de relatórios.
// Todos os métodos aceitam receiver nulo para que os serviços possam rodar
// sem métricas em testes.
type Metrics struct {
	JobsSubmitted      prometheus.Counter
	SubmissionFailures prometheus.Counter
	JobsCompleted      prometheus.Counter
	JobsTerminated     *prometheus.CounterVec
	PollRounds         prometheus.Counter
	RowsConsolidated   prometheus.Counter
	LastRunDuration    prometheus.Gauge
	LastRunRows        prometheus.Gauge
}

// DefaultMetrics é a instância global registrada no registry padrão
var DefaultMetrics *Metrics

// NewMetrics cria e registra as métricas do pipeline
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		JobsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_jobs_submitted_total",
			Help:      "Total de report jobs assíncronos submetidos",
		}),
		SubmissionFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_job_submission_failures_total",
			Help:      "Total de submissões de report job rejeitadas pela API",
		}),
		JobsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_jobs_completed_total",
			Help:      "Total de report jobs concluídos com sucesso",
		}),
		JobsTerminated: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_jobs_terminated_total",
			Help:      "Total de report jobs encerrados sem dados, por motivo",
		}, []string{"reason"}),
		PollRounds: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_poll_rounds_total",
			Help:      "Total de rodadas de polling executadas",
		}),
		RowsConsolidated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_rows_consolidated_total",
			Help:      "Total de linhas consolidadas de jobs concluídos",
		}),
		LastRunDuration: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_last_run_duration_seconds",
			Help:      "Duração da última execução do pipeline",
		}),
		LastRunRows: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_last_run_rows",
			Help:      "Linhas no relatório da última execução",
		}),
	}
}

// Init registra a instância global
func Init(namespace string) {
	DefaultMetrics = NewMetrics(namespace)
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) JobSubmitted() {
	if m == nil {
		return
	}
	m.JobsSubmitted.Inc()
}

func (m *Metrics) SubmissionFailed() {
	if m == nil {
		return
	}
	m.SubmissionFailures.Inc()
}

func (m *Metrics) JobCompleted() {
	if m == nil {
		return
	}
	m.JobsCompleted.Inc()
}

// JobTerminated registra um job encerrado sem contribuir linhas
// (reason: failed, skipped, discarded)
func (m *Metrics) JobTerminated(reason string) {
	if m == nil {
		return
	}
	m.JobsTerminated.WithLabelValues(reason).Inc()
}

func (m *Metrics) PollRound() {
	if m == nil {
		return
	}
	m.PollRounds.Inc()
}

func (m *Metrics) RowsAdded(n int) {
	if m == nil {
		return
	}
	m.RowsConsolidated.Add(float64(n))
}

func (m *Metrics) RunFinished(duration time.Duration, rows int) {
	if m == nil {
		return
	}
	m.LastRunDuration.Set(duration.Seconds())
	m.LastRunRows.Set(float64(rows))
}
