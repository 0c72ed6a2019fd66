package main

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderCharts writes one page with an exact-vs-sampled bar chart per report.
func renderCharts(w io.Writer, reports []report) error {
	page := components.NewPage()
	for _, rep := range reports {
		page.AddCharts(barChart(rep))
	}
	return page.Render(w)
}

func barChart(rep report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    rep.Name,
			Subtitle: fmt.Sprintf("%d samples", rep.Samples),
		}),
	)

	labels := make([]string, 0, len(rep.Rows))
	exact := make([]opts.BarData, 0, len(rep.Rows))
	sampled := make([]opts.BarData, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		labels = append(labels, r.Value)
		exact = append(exact, opts.BarData{Value: r.Exact})
		sampled = append(sampled, opts.BarData{Value: r.Empirical})
	}
	bar.SetXAxis(labels).
		AddSeries("exact", exact).
		AddSeries("sampled", sampled)
	return bar
}
