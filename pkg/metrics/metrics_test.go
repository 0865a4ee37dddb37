package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then collectors are registered on that registry", func() {
				So(manager, ShouldNotBeNil)
				manager.datasetRows.WithLabelValues("day").Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "oxdash_dashboard_dataset_rows")
			})
		})

		Convey("When overriding namespace and subsystem", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithPrometheusRegistry(registry),
			)
			manager.figureBuilds.WithLabelValues("bubble").Inc()

			Convey("Then metric names use them", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "test_unit_figure_builds_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When empty option values are passed", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithNamespace(""), WithSubsystem(""), WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then defaults are kept", func() {
				So(manager.namespace, ShouldEqual, "oxdash")
				So(manager.subsystem, ShouldEqual, "dashboard")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording dataset metrics", func() {
			UpdateDatasetRows("summary", 180)
			before := testutil.ToFloat64(globalManager.datasetLoadErrors.WithLabelValues("population", "fetch"))
			RecordDatasetLoadError("population", "fetch")
			RecordDatasetLoad("day", 120)
			UpdateDatasetLoadedUnix(1_600_000_000)

			Convey("Then gauges and counters reflect the values", func() {
				So(testutil.ToFloat64(globalManager.datasetRows.WithLabelValues("summary")), ShouldEqual, 180)
				So(testutil.ToFloat64(globalManager.datasetLoadErrors.WithLabelValues("population", "fetch")), ShouldEqual, before+1)
				So(testutil.ToFloat64(globalManager.datasetLoadedUnix), ShouldEqual, 1_600_000_000)
			})
		})

		Convey("When recording figure metrics", func() {
			before := testutil.ToFloat64(globalManager.figureBuilds.WithLabelValues("choropleth"))
			RecordFigureBuild("choropleth", 2.5)
			RecordEmptyFigure("line")
			RecordLookupFailure("metric")

			Convey("Then the build counter increments", func() {
				So(testutil.ToFloat64(globalManager.figureBuilds.WithLabelValues("choropleth")), ShouldEqual, before+1)
			})
		})

		Convey("When recording HTTP, error and system metrics", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordHTTPRequest("figure", "GET", "200")
					RecordHTTPRequestDuration("figure", "GET", "200", 3)
					RecordErrorByComponent("api", "unknown_metric")
					RecordErrorByType("client_error", "medium")
					RecordErrorByEndpoint("figure", "GET", "client_error")
					RecordErrorLatency("http", "client_error", 1)
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.3)
				}, ShouldNotPanic)
			})
		})

		Convey("Then the registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})

		Convey("Then it is built with the service naming and millisecond buckets", func() {
			So(globalManager.namespace, ShouldEqual, Namespace)
			So(globalManager.subsystem, ShouldEqual, Subsystem)
			So(globalManager.histogramBuckets, ShouldResemble, LatencyBucketsMs)

			RecordFigureBuild("bubble", 3)
			families, err := GetRegistry().Gather()
			So(err, ShouldBeNil)

			var bounds []float64
			for _, f := range families {
				if f.GetName() != "oxdash_dashboard_figure_build_latency_milliseconds" {
					continue
				}
				for _, b := range f.GetMetric()[0].GetHistogram().GetBucket() {
					bounds = append(bounds, b.GetUpperBound())
				}
			}
			So(bounds, ShouldResemble, LatencyBucketsMs)
		})
	})
}
