package chart_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/okian/oxdash/internal/domain/chart"
	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/selection"
	"github.com/okian/oxdash/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func d(day int) time.Time { return time.Date(2020, 3, day, 0, 0, 0, 0, time.UTC) }

func days() model.DayTable {
	tbl, err := model.NewDayTable([]model.CountryDayRecord{
		{CountryCode: "FRA", CountryName: "France", Continent: "Europe", Date: d(1), ConfirmedCases: 130, StringencyIndex: 5.56},
		{CountryCode: "JPN", CountryName: "Japan", Continent: "Asia", Date: d(1), ConfirmedCases: 256, StringencyIndex: 35.19},
		{CountryCode: "FRA", CountryName: "France", Continent: "Europe", Date: d(2), ConfirmedCases: 191, StringencyIndex: 5.56},
		{CountryCode: "DEU", CountryName: "Germany", Continent: "Europe", Date: d(2), ConfirmedCases: 159, StringencyIndex: 11.11},
		{CountryCode: "USA", CountryName: "United States", Continent: "North America", Date: d(2), ConfirmedCases: 12345},
	})
	if err != nil {
		panic(err)
	}
	return tbl
}

func resolve(scope types.Scope, metric types.Metric) selection.Result {
	res, err := selection.Resolve(scope, metric, days())
	if err != nil {
		panic(err)
	}
	return res
}

func TestMapBubble(t *testing.T) {
	convey.Convey("Given a world bubble selection", t, func() {
		fig, err := chart.Map(resolve(types.ScopeWorld, types.MetricConfirmedCases), chart.DefaultStyle)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then one frame per date is produced", func() {
			convey.So(len(fig.Frames), convey.ShouldEqual, 2)
			convey.So(fig.Frames[0].Name, convey.ShouldEqual, "2020-03-01")
			convey.So(fig.Frames[1].Name, convey.ShouldEqual, "2020-03-02")
		})

		convey.Convey("And every frame carries one trace per continent", func() {
			for _, f := range fig.Frames {
				convey.So(len(f.Data), convey.ShouldEqual, 3)
				convey.So(f.Data[0].Name, convey.ShouldEqual, "Europe")
				convey.So(f.Data[0].Type, convey.ShouldEqual, "scattergeo")
				convey.So(*f.Data[0].ShowLegend, convey.ShouldBeFalse)
			}
		})

		convey.Convey("And rows sharing a date stay in the same frame", func() {
			europe := fig.Frames[1].Data[0]
			convey.So(europe.Locations, convey.ShouldResemble, []string{"FRA", "DEU"})
			convey.So(europe.Marker.Size, convey.ShouldResemble, []float64{191, 159})
		})

		convey.Convey("And hover text uses the country name and grouped digits", func() {
			usa := fig.Frames[1].Data[2]
			convey.So(usa.Text[0], convey.ShouldEqual, "United States<br>Confirmed COVID-19 Cases: 12,345")
		})

		convey.Convey("And marker sizing is bounded by the world size max", func() {
			convey.So(fig.Data[0].Marker.SizeRef, convey.ShouldAlmostEqual, 2*12345.0/400.0)
		})

		convey.Convey("And the layout applies the dark theme and map styling", func() {
			l := fig.Layout
			convey.So(l.PlotBGColor, convey.ShouldEqual, "#111111")
			convey.So(l.PaperBGColor, convey.ShouldEqual, "#111111")
			convey.So(l.Font.Color, convey.ShouldEqual, "#7FDBFF")
			convey.So(l.Width, convey.ShouldEqual, 1400)
			convey.So(l.Height, convey.ShouldEqual, 800)
			convey.So(l.Margin, convey.ShouldResemble, chart.Margin{Pad: 4})
			convey.So(l.ShowLegend, convey.ShouldBeFalse)
			convey.So(l.Transition.Duration, convey.ShouldEqual, 300)
			convey.So(l.Geo.Projection.Type, convey.ShouldEqual, "natural earth")
			convey.So(l.Geo.Scope, convey.ShouldEqual, "world")
			convey.So(l.Geo.CoastlineColor, convey.ShouldEqual, "DarkBlue")
			convey.So(l.Geo.LandColor, convey.ShouldEqual, "DarkGreen")
			convey.So(l.Geo.OceanColor, convey.ShouldEqual, "LightBlue")
		})

		convey.Convey("And the slider steps through every date", func() {
			convey.So(len(fig.Layout.Sliders), convey.ShouldEqual, 1)
			convey.So(len(fig.Layout.Sliders[0].Steps), convey.ShouldEqual, 2)
		})

		convey.Convey("And the figure encodes as JSON", func() {
			_, err := json.Marshal(fig)
			convey.So(err, convey.ShouldBeNil)
		})

		convey.Convey("And a continent absent on a date encodes empty arrays", func() {
			asia := fig.Frames[1].Data[1]
			convey.So(asia.Name, convey.ShouldEqual, "Asia")

			raw, err := json.Marshal(asia)
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(raw), convey.ShouldContainSubstring, `"locations":[]`)
			convey.So(string(raw), convey.ShouldContainSubstring, `"text":[]`)
			convey.So(string(raw), convey.ShouldContainSubstring, `"size":[]`)
		})
	})
}

func TestMapChoropleth(t *testing.T) {
	convey.Convey("Given a Europe stringency selection", t, func() {
		fig, err := chart.Map(resolve(types.ScopeEurope, types.MetricStringencyIndex), chart.DefaultStyle)
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then each frame has a single choropleth trace", func() {
			for _, f := range fig.Frames {
				convey.So(len(f.Data), convey.ShouldEqual, 1)
				convey.So(f.Data[0].Type, convey.ShouldEqual, "choropleth")
				convey.So(*f.Data[0].ShowScale, convey.ShouldBeTrue)
			}
		})

		convey.Convey("And the colour range spans every frame", func() {
			tr := fig.Frames[0].Data[0]
			convey.So(*tr.ZMin, convey.ShouldEqual, 5.56)
			convey.So(*tr.ZMax, convey.ShouldEqual, 11.11)
		})

		convey.Convey("And the scale runs dark red to pale yellow", func() {
			scale := fig.Frames[0].Data[0].ColorScale
			convey.So(scale[0][1], convey.ShouldEqual, "#800026")
			convey.So(scale[len(scale)-1][1], convey.ShouldEqual, "#ffffcc")
			convey.So(scale[len(scale)-1][0], convey.ShouldEqual, 1.0)
		})

		convey.Convey("And the map is equirectangular on the Europe region", func() {
			convey.So(fig.Layout.Geo.Projection.Type, convey.ShouldEqual, "equirectangular")
			convey.So(fig.Layout.Geo.Scope, convey.ShouldEqual, "europe")
			convey.So(fig.Layout.ShowLegend, convey.ShouldBeTrue)
		})

		convey.Convey("And the index keeps two decimals in hover text", func() {
			convey.So(fig.Frames[1].Data[0].Text[1], convey.ShouldEqual, "Germany<br>Government Action/Interventions: 11.11")
		})
	})
}

func TestMapEmpty(t *testing.T) {
	convey.Convey("Given a selection that matched nothing", t, func() {
		res := resolve(types.ScopeSouthAmerica, types.MetricConfirmedDeaths)
		fig, err := chart.Map(res, chart.DefaultStyle)

		convey.Convey("Then an empty map is still produced", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(fig.Frames, convey.ShouldBeEmpty)
			convey.So(len(fig.Data), convey.ShouldEqual, 1)
			convey.So(fig.Data[0].Locations, convey.ShouldBeEmpty)
			convey.So(fig.Layout.Geo.Scope, convey.ShouldEqual, "south america")
		})
	})

	convey.Convey("Given an unknown geometry", t, func() {
		res := resolve(types.ScopeWorld, types.MetricConfirmedCases)
		res.Kind = selection.KindLine
		_, err := chart.Map(res, chart.DefaultStyle)

		convey.Convey("Then assembling fails", func() {
			convey.So(errors.Is(err, chart.ErrUnsupportedKind), convey.ShouldBeTrue)
		})
	})
}

func TestTrend(t *testing.T) {
	convey.Convey("Given the expanded rows of two countries", t, func() {
		rows := days().Filter(func(r model.CountryDayRecord) bool {
			return r.CountryCode == "FRA" || r.CountryCode == "JPN"
		})

		convey.Convey("When assembling the thumbnail", func() {
			fig, err := chart.Trend(rows, []string{"JPN", "FRA"}, types.MetricConfirmedCases, chart.DefaultStyle)

			convey.Convey("Then there is one line per country in rank order", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(fig.Data), convey.ShouldEqual, 2)
				convey.So(fig.Data[0].Name, convey.ShouldEqual, "Japan")
				convey.So(fig.Data[1].X, convey.ShouldResemble, []string{"2020-03-01", "2020-03-02"})
				convey.So(fig.Data[1].Y, convey.ShouldResemble, []float64{130, 191})
			})

			convey.Convey("And the thumbnail is small with hidden x tick labels", func() {
				convey.So(fig.Layout.Width, convey.ShouldEqual, 400)
				convey.So(fig.Layout.Height, convey.ShouldEqual, 200)
				convey.So(fig.Layout.XAxis.ShowTickLabels, convey.ShouldBeFalse)
				convey.So(fig.Layout.PaperBGColor, convey.ShouldEqual, "#111111")
			})
		})

		convey.Convey("When there are no countries", func() {
			fig, err := chart.Trend(nil, nil, types.MetricConfirmedCases, chart.DefaultStyle)

			convey.Convey("Then an empty chart is returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(fig.Data, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the metric is unknown", func() {
			_, err := chart.Trend(rows, []string{"FRA"}, types.Metric("R0"), chart.DefaultStyle)

			convey.Convey("Then the lookup failure is returned", func() {
				convey.So(errors.Is(err, types.ErrUnknownMetric), convey.ShouldBeTrue)
			})
		})
	})
}
