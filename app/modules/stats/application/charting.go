package statsservice

import (
	"bytes"

	statsdomain "github.com/edenhub/eden-web/app/modules/stats/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette colours the stats chart.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Accent     drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette matches the site's dark theme.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorFromHex("111827"),
	Bar:        drawing.ColorFromHex("6366F1"),
	Accent:     drawing.ColorFromHex("F59E0B"),
	TextColor:  drawing.ColorFromHex("E5E7EB"),
}

// RenderChart draws the breakdown as a PNG bar chart. Run counts use the bar
// colour and the global counters the accent colour.
func RenderChart(b statsdomain.Breakdown, palette ChartPalette) ([]byte, error) {
	if b.Empty() {
		return RenderPlaceholder("No run data yet", palette)
	}

	bars := b.Bars()
	values := make([]chart.Value, len(bars))
	for i, bar := range bars {
		color := palette.Bar
		if i >= 3 {
			color = palette.Accent
		}
		values[i] = chart.Value{
			Label: bar.Label,
			Value: float64(bar.Value),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}

	graph := chart.BarChart{
		Width:      720,
		Height:     360,
		BarWidth:   80,
		BarSpacing: 40,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 32, Left: 16, Right: 16, Bottom: 16},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
		},
		Bars: values,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// RenderPlaceholder draws msg centred on an empty canvas. go-chart refuses to
// render without a series, so an invisible one with hidden axes is supplied.
func RenderPlaceholder(msg string, palette ChartPalette) ([]byte, error) {
	graph := chart.Chart{
		Width:  400,
		Height: 200,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis: chart.YAxis{Style: chart.Style{Hidden: true}},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: drawing.ColorTransparent,
					FillColor:   drawing.ColorTransparent,
				},
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, defaults chart.Style) {
				r.SetFont(defaults.Font)
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := cb.Left + (cb.Width()-tb.Width())/2
				y := cb.Top + (cb.Height()+tb.Height())/2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
