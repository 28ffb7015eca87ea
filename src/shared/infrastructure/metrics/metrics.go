package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Métricas del gateway. Se registran una sola vez al importar el paquete.
var (
	// BackendRequests cuenta llamadas al backend por recurso y resultado
	// (outcome: "success" | "error").
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_backend_requests_total",
			Help: "Total de requests al backend REST, por recurso y resultado",
		},
		[]string{"resource", "outcome"},
	)

	// SalesCreated cuenta ventas creadas con éxito vía el gateway.
	SalesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_sales_created_total",
			Help: "Total de ventas creadas con éxito",
		},
	)
)

func init() {
	prometheus.MustRegister(BackendRequests, SalesCreated)
}

// ObserveBackend registra el resultado de una llamada al backend.
func ObserveBackend(resource string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	BackendRequests.WithLabelValues(resource, outcome).Inc()
}
