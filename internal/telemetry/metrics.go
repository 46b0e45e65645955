package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsConsumed counts raw input events read from the source,
	// labelled by event type ("key", "abs").
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scc_input_events_total",
		Help: "Raw input events consumed from the source device.",
	}, []string{"type"})

	// AxisWrites counts values written to the output device, labelled
	// by output axis name.
	AxisWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scc_axis_writes_total",
		Help: "Axis values written to the virtual output device.",
	}, []string{"axis"})

	// ProfileLoadFailures counts rejected profile documents.
	ProfileLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scc_profile_load_failures_total",
		Help: "Profiles rejected at load time.",
	})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
