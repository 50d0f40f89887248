package coverage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	plotXLabel = "Coverage"
	plotYLabel = "Frac Above Threshold (%)"

	DefaultImageExt = "pdf"
)

// Vector and print formats go through gonum/plot. PNG goes through go-chart,
// whose raster output is considerably smaller.
var gonumPlotFormats = map[string]struct{}{
	"pdf":  {},
	"eps":  {},
	"svg":  {},
	"tif":  {},
	"tiff": {},
	"jpg":  {},
	"jpeg": {},
}

// NormalizeImageExt lowercases ext and strips a leading dot.
func NormalizeImageExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SupportedImageExt reports whether PlotSeries can render to ext.
func SupportedImageExt(ext string) bool {
	ext = NormalizeImageExt(ext)
	if ext == "png" {
		return true
	}
	_, ok := gonumPlotFormats[ext]
	return ok
}

// PlotPath is where the plot of genomeID is written. Path separators in the
// genome identifier are replaced so that every plot lands in outDir.
func PlotPath(outDir, genomeID, ext string) string {
	name := strings.NewReplacer("/", "_", `\`, "_").Replace(genomeID)
	return filepath.Join(outDir, name+"."+NormalizeImageExt(ext))
}

// PlotSeries renders the fraction of the genome above each coverage threshold
// as a line plot titled with the genome identifier. The format follows the
// extension of path.
func PlotSeries(path, genomeID string, points []Point) error {
	var err error

	ext := NormalizeImageExt(filepath.Ext(path))
	if _, ok := gonumPlotFormats[ext]; ok {
		err = renderGonumPlot(path, genomeID, points)
	} else if ext == "png" {
		err = renderChartPNG(path, genomeID, points)
	} else {
		err = fmt.Errorf("unsupported image format %q", ext)
	}

	if err != nil {
		return &Error{Kind: ErrOutputWrite, Path: path, Genome: genomeID, Err: err}
	}

	return nil
}

func renderGonumPlot(path, genomeID string, points []Point) error {
	p := plot.New()
	p.Title.Text = genomeID
	p.X.Label.Text = plotXLabel
	p.Y.Label.Text = plotYLabel

	xys := make(plotter.XYs, len(points))
	for i, v := range points {
		xys[i].X = float64(v.Threshold)
		xys[i].Y = v.FractionAbovePercent
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}

	// No legend entry is added for the line.
	p.Add(line)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

func renderChartPNG(path, genomeID string, points []Point) error {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))

	yRange := &chart.ContinuousRange{Min: 0, Max: percentScale}
	for i, v := range points {
		xs[i] = float64(v.Threshold)
		ys[i] = v.FractionAbovePercent

		if ys[i] < yRange.Min {
			yRange.Min = ys[i]
		}
		if ys[i] > yRange.Max {
			yRange.Max = ys[i]
		}
	}

	// go-chart refuses to render an axis with a zero-width range, which is what
	// a genome with a single threshold would produce.
	var xRange chart.Range
	if len(xs) > 0 && xs[0] == xs[len(xs)-1] {
		xRange = &chart.ContinuousRange{Min: xs[0] - 1, Max: xs[0] + 1}
	}

	graph := chart.Chart{
		Title:  genomeID,
		Width:  768,
		Height: 512,
		XAxis: chart.XAxis{
			Name:  plotXLabel,
			Range: xRange,
		},
		YAxis: chart.YAxis{
			Name:  plotYLabel,
			Range: yRange,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
			},
		},
	}

	// Render to a byte buffer so that a failed render leaves no file behind
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := buffer.WriteTo(outFile); err != nil {
		outFile.Close()
		return err
	}

	return outFile.Close()
}
