package outwriter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/huangsam/kdstats/schema"
	chart "github.com/wcharczuk/go-chart/v2"
)

const chartImageName = "chart"

// writeChartDocument renders the chart and persists it atomically at path.
func writeChartDocument(ow *OutWriter, model schema.ChartModel, path string) error {
	pdf, err := buildChartDocument(model, ow.meta())
	if err != nil {
		return err
	}
	return writeWithFile(path, pdf.Output, ow.out)
}

// buildChartDocument rasterizes the chart and places it on one landscape page.
func buildChartDocument(model schema.ChartModel, meta docMeta) (*fpdf.Fpdf, error) {
	png, err := renderChartPNG(model)
	if err != nil {
		return nil, err
	}

	pdf := newDocument("L", model.Title, meta)
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(chartImageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(chartImageName, 0, 0, pageLong, pageShort, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to lay out chart page: %w", err)
	}
	return pdf, nil
}

// renderChartPNG rasterizes the chart for model.
func renderChartPNG(model schema.ChartModel) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderChart(model, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderChart writes the chart as PNG to w.
func renderChart(model schema.ChartModel, w io.Writer) error {
	ch := BuildChart(model)
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
