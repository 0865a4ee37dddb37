package render_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/okian/oxdash/internal/adapters/render"
	"github.com/okian/oxdash/internal/domain/chart"
	"github.com/okian/oxdash/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestThumbnail(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	Convey("Given a renderer", t, func() {
		r := render.NewRenderer()
		ctx := context.Background()

		Convey("When rendering a two-line trend", func() {
			fig := chart.Figure{Data: []chart.Trace{
				{Name: "Belgium", X: []string{"2020-03-01", "2020-03-02", "2020-03-03"}, Y: []float64{0, 3, 10}},
				{Name: "Spain", X: []string{"2020-03-01", "2020-03-02", "2020-03-03"}, Y: []float64{0, 5, 8}},
			}}
			out, err := r.Thumbnail(ctx, fig)

			Convey("Then a thumbnail-sized PNG is produced", func() {
				So(err, ShouldBeNil)
				img, err := png.Decode(bytes.NewReader(out))
				So(err, ShouldBeNil)
				So(img.Bounds().Dx(), ShouldEqual, 400)
				So(img.Bounds().Dy(), ShouldEqual, 200)
			})
		})

		Convey("When the trend is empty", func() {
			out, err := r.Thumbnail(ctx, chart.Figure{})

			Convey("Then a blank background image is returned", func() {
				So(err, ShouldBeNil)
				img, err := png.Decode(bytes.NewReader(out))
				So(err, ShouldBeNil)
				So(img.Bounds().Dx(), ShouldEqual, 400)
				cr, cg, cb, _ := img.At(10, 10).RGBA()
				So(cr>>8, ShouldEqual, 0x11)
				So(cg>>8, ShouldEqual, 0x11)
				So(cb>>8, ShouldEqual, 0x11)
			})
		})

		Convey("When a series has a single date", func() {
			fig := chart.Figure{Data: []chart.Trace{{Name: "Peru", X: []string{"2020-05-15"}, Y: []float64{7}}}}
			out, err := r.Thumbnail(ctx, fig)

			Convey("Then an image is still produced", func() {
				So(err, ShouldBeNil)
				_, err := png.Decode(bytes.NewReader(out))
				So(err, ShouldBeNil)
			})
		})

		Convey("When x and y lengths disagree", func() {
			fig := chart.Figure{Data: []chart.Trace{{Name: "Chad", X: []string{"2020-05-15"}, Y: []float64{1, 2}}}}
			_, err := r.Thumbnail(ctx, fig)

			Convey("Then rendering fails", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "Chad")
			})
		})

		Convey("When a custom size is configured", func() {
			style := chart.DefaultStyle
			style.ThumbWidth, style.ThumbHeight = 200, 100
			out, err := render.NewRenderer(render.WithStyle(style)).Thumbnail(ctx, chart.Figure{})

			Convey("Then it is honoured", func() {
				So(err, ShouldBeNil)
				img, err := png.Decode(bytes.NewReader(out))
				So(err, ShouldBeNil)
				So(img.Bounds().Dx(), ShouldEqual, 200)
			})
		})
	})
}
