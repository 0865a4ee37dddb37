package smoke_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/oxdash/internal/adapters/http/api"
	service "github.com/okian/oxdash/internal/app"
	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/smoke"
	"github.com/okian/oxdash/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var ref = time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC)

type fixtureLoader struct{}

func (fixtureLoader) Load(context.Context) (model.DayTable, model.PopulationTable, error) {
	days, err := model.NewDayTable([]model.CountryDayRecord{
		{CountryCode: "BEL", CountryName: "Belgium", Continent: "Europe", Date: ref.AddDate(0, 0, -1), ConfirmedCases: 53981, ConfirmedDeaths: 8843, StringencyIndex: 81.48, SchoolClosing: 3, StayAtHome: 2},
		{CountryCode: "BEL", CountryName: "Belgium", Continent: "Europe", Date: ref, ConfirmedCases: 54288, ConfirmedDeaths: 8959, StringencyIndex: 81.48, SchoolClosing: 3, StayAtHome: 2},
		{CountryCode: "PER", CountryName: "Peru", Continent: "South America", Date: ref, ConfirmedCases: 84495, ConfirmedDeaths: 2392, StringencyIndex: 96.3, SchoolClosing: 3, StayAtHome: 2},
		{CountryCode: "JPN", CountryName: "Japan", Continent: "Asia", Date: ref, ConfirmedCases: 16203, ConfirmedDeaths: 713, StringencyIndex: 47.22, SchoolClosing: 2, StayAtHome: 1},
	})
	if err != nil {
		return model.DayTable{}, model.PopulationTable{}, err
	}
	pops, err := model.NewPopulationTable([]model.CountryPopulationRecord{
		{CountryCode: "BEL", Population2020: 11_589_623},
		{CountryCode: "PER", Population2020: 32_971_854},
		{CountryCode: "JPN", Population2020: 126_476_461},
	})
	return days, pops, err
}

func newDashboard(t *testing.T) *httptest.Server {
	t.Helper()
	svc := service.New(service.WithLoader(fixtureLoader{}), service.WithReferenceDate(ref))
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	r := api.NewRouter(nil)
	api.NewServer(svc, svc, 20).Register(context.Background(), r)
	return httptest.NewServer(r)
}

func TestRun(t *testing.T) {
	Convey("Given a running dashboard", t, func() {
		srv := newDashboard(t)
		defer srv.Close()
		cfg := &smoke.Config{BaseURL: srv.URL, TopN: 5, Workers: 3, Timeout: 5 * time.Second}

		Convey("When every combination is checked", func() {
			stats, err := smoke.Run(context.Background(), cfg)

			Convey("Then all thirty pass", func() {
				So(err, ShouldBeNil)
				So(stats.Combos, ShouldEqual, 30)
				So(stats.Passed, ShouldEqual, 30)
				So(stats.Failed, ShouldEqual, 0)
				So(stats.EmptyMaps, ShouldEqual, 10)
			})
		})
	})

	Convey("Given a server that draws the wrong geometry", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/healthz":
				_, _ = w.Write([]byte("ok"))
			case "/api/options":
				_, _ = w.Write([]byte(`{"scopes":[{"label":"World","value":"world"}],"metrics":[{"label":"Confirmed COVID-19 Cases","value":"ConfirmedCases"}]}`))
			case "/api/figure":
				_, _ = w.Write([]byte(`{"title":"Showing Confirmed COVID-19 Cases for World","help":"h","spec":{"kind":"choropleth","projection":"equirectangular","size_max":80,"show_legend":true},"figure":{"data":[{}]}}`))
			case "/api/trend":
				_, _ = w.Write([]byte(`{"title":"x","codes":[],"figure":{"data":[]}}`))
			case "/api/top":
				_, _ = w.Write([]byte(`[]`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		Convey("When the combination is checked", func() {
			stats, err := smoke.Run(context.Background(), &smoke.Config{BaseURL: srv.URL, Workers: 1, Timeout: time.Second})

			Convey("Then the run fails and names the combination", func() {
				So(errors.Is(err, smoke.ErrChecksFailed), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "world/ConfirmedCases")
				So(stats.Failed, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an unreachable server", t, func() {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		Convey("Then the health check fails", func() {
			_, err := smoke.Run(context.Background(), &smoke.Config{BaseURL: url, Workers: 1, Timeout: time.Second})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "health check")
		})
	})
}
