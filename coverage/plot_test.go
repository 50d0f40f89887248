package coverage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var samplePoints = []Point{{0, 90}, {1, 75}, {5, 50}, {10, 25}, {20, 0}}

func TestPlotSeries(t *testing.T) {
	dir := t.TempDir()

	for _, v := range []struct {
		Ext   string
		Magic []byte
	}{
		{"pdf", []byte("%PDF")},
		{"svg", []byte("<?xml")},
		{"png", []byte("\x89PNG")},
	} {
		path := PlotPath(dir, "NC_045512.2", v.Ext)
		if err := PlotSeries(path, "NC_045512.2", samplePoints); err != nil {
			t.Fatalf("%s: %v", v.Ext, err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", v.Ext, err)
		}
		if !bytes.HasPrefix(content, v.Magic) {
			t.Errorf("%s: file does not start with %q", v.Ext, v.Magic)
		}
	}
}

func TestPlotSeriesSingleThreshold(t *testing.T) {
	dir := t.TempDir()

	for _, ext := range []string{"pdf", "png"} {
		if err := PlotSeries(PlotPath(dir, "g", ext), "g", []Point{{10, 0}}); err != nil {
			t.Errorf("%s: %v", ext, err)
		}
	}
}

func TestPlotSeriesFailures(t *testing.T) {
	dir := t.TempDir()

	for _, path := range []string{
		filepath.Join(dir, "missing", "g.pdf"),
		filepath.Join(dir, "missing", "g.png"),
		filepath.Join(dir, "g.bmp"),
	} {
		err := PlotSeries(path, "g", samplePoints)
		if !errors.Is(err, ErrOutputWrite) {
			t.Errorf("%s: expected ErrOutputWrite, got %v", path, err)
		}
	}
}

func TestPlotPath(t *testing.T) {
	if got, expected := PlotPath("out", "kraken/NC_1", ".PDF"), filepath.Join("out", "kraken_NC_1.pdf"); got != expected {
		t.Errorf("got %s, expected %s", got, expected)
	}

	for ext, ok := range map[string]bool{"pdf": true, ".png": true, "SVG": true, "bmp": false, "": false} {
		if SupportedImageExt(ext) != ok {
			t.Errorf("SupportedImageExt(%q) != %v", ext, ok)
		}
	}
}
