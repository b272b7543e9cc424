package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/stats"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("no games to plot")

const (
	chartHeight   = 420
	minChartWidth = 640
	barWidth      = 28
	barSpacing    = 12
	// games beyond maxBars are not plotted
	maxBars       = 150
	maxChartWidth = 120 + maxBars*(barWidth+barSpacing)
)

var (
	overColor  = chart.ColorGreen
	underColor = chart.ColorBlue
	equalColor = chart.ColorAlternateGray
	lineColor  = drawing.ColorFromHex("d32f2f")
)

// BarChart draws one bar per point, in the given order, coloured by whether
// the value is over, under or on the line, and a dashed horizontal line at the
// line value. Points without a value are drawn as empty bars. Points are
// expected most recent first and only the first maxBars of them are drawn.
func BarChart(w io.Writer, points []stats.ChartPoint, stat data.Stat, line float64, format Format) error {
	if len(points) == 0 {
		return ErrNoData
	}
	if len(points) > maxBars {
		points = points[:maxBars]
	}

	bars, lo, hi := chartBars(points, line)
	graph := chart.BarChart{
		Title:        fmt.Sprintf("%s by Round (line %s)", stat.Title(), formatLine(line)),
		Width:        chartWidth(len(bars)),
		Height:       chartHeight,
		BarWidth:     barWidth,
		BarSpacing:   barSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		Background:   chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:        chart.Style{FontSize: 8},
		YAxis: chart.YAxis{
			Name:  stat.Title(),
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	graph.Elements = []chart.Renderable{lineMarker(line, lo, hi)}

	// render to a buffer so a failed render never leaves a partial image
	var buf bytes.Buffer
	if err := graph.Render(format.renderer(), &buf); err != nil {
		return fmt.Errorf("error rendering %s chart: %w", format, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// chartBars converts the points to styled bars and returns the y range to
// draw them in. The range always includes zero so every bar rises from the
// zero baseline; a line below the lowest value is left out of it.
func chartBars(points []stats.ChartPoint, line float64) (bars []chart.Value, lo, hi float64) {
	bars = make([]chart.Value, len(points))
	hi = math.Max(0, line)
	for i, p := range points {
		bar := chart.Value{Label: p.Round, Style: barStyle(equalColor)}
		if p.Value != nil {
			v := *p.Value
			bar.Value = v
			lo, hi = math.Min(lo, v), math.Max(hi, v)
			switch {
			case v > line:
				bar.Style = barStyle(overColor)
			case v < line:
				bar.Style = barStyle(underColor)
			}
		}
		bars[i] = bar
	}
	if hi == lo {
		hi = lo + 1
	}
	hi += (hi - lo) * 0.1
	return bars, lo, hi
}

func barStyle(color drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   color,
		StrokeColor: color,
		StrokeWidth: 1,
	}
}

func lineMarker(line, lo, hi float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		y := canvasBox.Bottom - int((math.Max(line, lo)-lo)/(hi-lo)*float64(canvasBox.Height()))
		r.SetStrokeColor(lineColor)
		r.SetStrokeWidth(2)
		r.SetStrokeDashArray([]float64{6, 4})
		r.MoveTo(canvasBox.Left, y)
		r.LineTo(canvasBox.Right, y)
		r.Stroke()
	}
}

func chartWidth(bars int) int {
	width := 120 + bars*(barWidth+barSpacing)
	switch {
	case width < minChartWidth:
		return minChartWidth
	case width > maxChartWidth:
		return maxChartWidth
	}
	return width
}

func formatLine(line float64) string {
	return fmt.Sprintf("%g", line)
}
