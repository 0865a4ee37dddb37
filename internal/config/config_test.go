package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/oxdash/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have the dashboard defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8050")
			convey.So(cfg.DaySourceURL, convey.ShouldEqual, config.DefaultDaySourceURL)
			convey.So(cfg.PopulationSourceURL, convey.ShouldBeEmpty)
			convey.So(cfg.ReferenceDate, convey.ShouldEqual, "2020-05-15")
			convey.So(cfg.TrendSize, convey.ShouldEqual, 5)
			convey.So(cfg.FetchTimeout(), convey.ShouldEqual, 30*time.Second)
		})

		convey.Convey("And the defaults alone should not validate", func() {
			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "populationsourceurl")
		})

		convey.Convey("And they validate once a population source is set", func() {
			cfg.PopulationSourceURL = "/srv/data/population.csv"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("And the reference date should parse", func() {
			ref, err := cfg.Reference()
			convey.So(err, convey.ShouldBeNil)
			convey.So(ref.Equal(time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC)), convey.ShouldBeTrue)
		})
	})
}
