// Package render draws the trend thumbnail as a PNG on the server, for
// clients that cannot run the browser charting library.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/oxdash/internal/domain/chart"
	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/pkg/logger"
)

var palette = []string{"636efa", "EF553B", "00cc96", "ab63fa", "FFA15A", "19d3f3", "FF6692"}

// Renderer turns a trend figure into PNG bytes.
type Renderer struct {
	style  chart.Style
	logger logger.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStyle overrides the default dark theme.
func WithStyle(s chart.Style) Option {
	return func(r *Renderer) { r.style = s }
}

// WithLogger sets the renderer's logger.
func WithLogger(lg logger.Logger) Option {
	return func(r *Renderer) {
		if lg != nil {
			r.logger = lg
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{style: chart.DefaultStyle, logger: logger.Get().Named("render")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Thumbnail renders fig's line traces at the thumbnail size with x tick
// labels hidden. A figure with nothing to draw, or one the plotting library
// rejects, comes back as a blank background image.
func (r *Renderer) Thumbnail(ctx context.Context, fig chart.Figure) ([]byte, error) {
	series, err := r.series(fig)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return r.blank()
	}

	bg := hex(r.style.Background)
	fg := hex(r.style.Text)
	c := gochart.Chart{
		Width:      r.style.ThumbWidth,
		Height:     r.style.ThumbHeight,
		Background: gochart.Style{FillColor: bg, Padding: gochart.Box{Top: 10, Left: 10, Right: 10, Bottom: 10}},
		Canvas:     gochart.Style{FillColor: bg},
		XAxis:      gochart.XAxis{Style: gochart.Style{Hidden: true}},
		YAxis:      gochart.YAxis{Style: gochart.Style{FontColor: fg, StrokeColor: fg}},
		Series:     series,
	}

	var buf bytes.Buffer
	if err := c.Render(gochart.PNG, &buf); err != nil {
		r.logger.Warn(ctx, "thumbnail render failed, using blank image", logger.Error(err))
		return r.blank()
	}
	return buf.Bytes(), nil
}

func (r *Renderer) series(fig chart.Figure) ([]gochart.Series, error) {
	out := make([]gochart.Series, 0, len(fig.Data))
	for i, t := range fig.Data {
		if len(t.X) == 0 {
			continue
		}
		if len(t.X) != len(t.Y) {
			return nil, fmt.Errorf("trace %q: %d x values for %d y values", t.Name, len(t.X), len(t.Y))
		}
		xs := make([]time.Time, 0, len(t.X))
		for _, x := range t.X {
			ts, err := time.Parse(model.DateLayout, x)
			if err != nil {
				return nil, fmt.Errorf("trace %q: %w", t.Name, err)
			}
			xs = append(xs, ts)
		}
		ys := append([]float64(nil), t.Y...)
		// A single date has no x range; widen it by a day.
		if len(xs) == 1 {
			xs = append(xs, xs[0].AddDate(0, 0, 1))
			ys = append(ys, ys[0])
		}
		col := hex(palette[i%len(palette)])
		out = append(out, gochart.TimeSeries{
			Name:    t.Name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: col, StrokeWidth: 1.5},
		})
	}
	return out, nil
}

func (r *Renderer) blank() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.style.ThumbWidth, r.style.ThumbHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: rgba(hex(r.style.Background))}, image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hex(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

func rgba(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
