package plot

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
)

// Format is the image encoding of a rendered chart.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg" in any case. Empty means PNG.
func ParseFormat(str string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(str))); f {
	case "":
		return PNG, nil
	case PNG, SVG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported chart format %q. must be one of png, svg", str)
}

func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) renderer() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}
