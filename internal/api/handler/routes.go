package handler

import (
	"net/http"

	"github.com/vfg2006/meta-report-pipeline/internal/api/handler/router"
	"github.com/vfg2006/meta-report-pipeline/internal/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Report(services ReportServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report/run",
			Method:  http.MethodPost,
			Handler: RunReport(services),
		},
		{
			Path:    "/v1/report/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(services),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}
