package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func newScenarioChart(title string, sc Scenario) *charts.Bar {
	labels := make([]string, len(sc.Phases))
	totals := make([]opts.BarData, len(sc.Phases))
	for i, p := range sc.Phases {
		labels[i] = p.Name
		totals[i] = opts.BarData{Value: float64(p.Total.Microseconds()) / 1000}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "milliseconds per phase"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("total", totals).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// writeChart renders one bar chart per scenario into a single HTML page.
func writeChart(path string, r *Report) error {
	page := components.NewPage()
	for _, sc := range r.Scenarios {
		title := fmt.Sprintf("%s, %s %s, n=%d", sc.Name, r.Curve, r.Variant, r.Messages)
		page.AddCharts(newScenarioChart(title, sc))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
