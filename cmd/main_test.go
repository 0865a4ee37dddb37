package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	app "github.com/okian/oxdash/internal/app"
	"github.com/okian/oxdash/internal/config"
	"github.com/okian/oxdash/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const testDays = `CountryCode,CountryName,Continent_Name,Date,ConfirmedCases,ConfirmedDeaths,StringencyIndex,School closing,Stay at home requirements
BEL,Belgium,Europe,20200515,54288,8959,81.48,3,2
PER,Peru,South America,20200515,84495,2392,96.3,3,2
`

const testPopulation = `CountryCode,CountryName,Population2020
BEL,Belgium,11589623
PER,Peru,32971854
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	day := filepath.Join(dir, "oxfix.csv")
	pop := filepath.Join(dir, "population.csv")
	if err := os.WriteFile(day, []byte(testDays), 0o600); err != nil {
		t.Fatalf("write day fixture: %v", err)
	}
	if err := os.WriteFile(pop, []byte(testPopulation), 0o600); err != nil {
		t.Fatalf("write population fixture: %v", err)
	}
	cfg := config.New()
	cfg.DaySourceURL = day
	cfg.PopulationSourceURL = pop
	return cfg
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given a configuration pointing at local fixtures", t, func() {
		ctx := context.Background()
		cfg := testConfig(t)

		convey.Convey("When the service is built and started", func() {
			svc, err := newService(cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			handler := newHandler(ctx, svc, cfg, logger.Get())
			serve := func(path string) *httptest.ResponseRecorder {
				req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				return w
			}

			convey.Convey("Then every surface is routed", func() {
				convey.So(serve("/").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/api/options").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/api/figure?scope=europe&metric=ConfirmedDeaths").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/api/trend.png").Header().Get("Content-Type"), convey.ShouldEqual, "image/png")
				convey.So(serve("/api/rank/bel").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/openapi.yaml").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/healthz").Code, convey.ShouldEqual, http.StatusOK)
				convey.So(serve("/stats").Body.String(), convey.ShouldContainSubstring, `"started":true`)
			})

			convey.Convey("And the service metrics update does not panic", func() {
				convey.So(func() { updateServiceMetrics(svc) }, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the day source is missing", func() {
			cfg := testConfig(t)
			cfg.DaySourceURL = filepath.Join(t.TempDir(), "absent.csv")
			svc, err := newService(cfg, logger.Get())
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then start fails", func() {
				convey.So(svc.Start(context.Background()), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the reference date is malformed", func() {
			cfg := testConfig(t)
			cfg.ReferenceDate = "May 15"

			convey.Convey("Then the service is not built", func() {
				_, err := newService(cfg, logger.Get())
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When running the system metrics updater until cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
		})

		convey.Convey("When running the service metrics updater until cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() { startServiceMetricsUpdater(ctx, app.New()) }, convey.ShouldNotPanic)
		})

		convey.Convey("When updating system metrics", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
