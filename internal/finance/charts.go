package finance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vicanso/go-charts/v2"
)

// RenderLineChart renders a Series as a PNG line chart with fixed styling:
// title "<SYMBOL> Stock Price Chart (<range>)", dates on the x axis, close
// price in USD on the y axis.
func RenderLineChart(s *Series) ([]byte, *Failure) {
	if len(s.Points) < 2 {
		return nil, &Failure{Kind: FailRender, Symbol: s.Symbol, Err: errors.New("not enough data points")}
	}

	labels := make([]string, len(s.Points))
	vals := make([]float64, len(s.Points))
	var yMin, yMax float64
	for i, p := range s.Points {
		labels[i] = p.Time.Format("2006-01-02")
		vals[i] = p.Close
		if i == 0 {
			yMin, yMax = p.Close, p.Close
			continue
		}
		if p.Close < yMin {
			yMin = p.Close
		}
		if p.Close > yMax {
			yMax = p.Close
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	title := fmt.Sprintf("%s Stock Price Chart (%s)", strings.ToUpper(s.Symbol), s.Range)
	painter, err := charts.LineRender([][]float64{vals},
		charts.TitleTextOptionFunc(title, "Date / Price (USD)"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, &Failure{Kind: FailRender, Symbol: s.Symbol, Err: err}
	}
	img, err := painter.Bytes()
	if err != nil {
		return nil, &Failure{Kind: FailRender, Symbol: s.Symbol, Err: err}
	}
	return img, nil
}
