// Package chart lays out and draws the intensity-by-topic bar chart
package chart

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"piptrade/internal/core/record"
)

// Margin is the gutter around the plot area
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Frame fixes the chart dimensions
type Frame struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
	Margin       Margin  `json:"margin"`
	Padding      float64 `json:"padding"`
	TickCount    int     `json:"tick_count"`
}

// DefaultFrame is the dashboard chart: 1100x500 in a 1200x600 canvas
func DefaultFrame() Frame {
	return Frame{
		Width:        1100,
		Height:       500,
		CanvasWidth:  1200,
		CanvasHeight: 600,
		Margin:       Margin{Top: 20, Right: 30, Bottom: 40, Left: 50},
		Padding:      0.1,
		TickCount:    10,
	}
}

// InnerWidth is the plot width inside the margins
func (f Frame) InnerWidth() float64 { return f.Width - f.Margin.Left - f.Margin.Right }

// InnerHeight is the plot height inside the margins
func (f Frame) InnerHeight() float64 { return f.Height - f.Margin.Top - f.Margin.Bottom }

// Bar is one record drawn as a rectangle in plot coordinates
type Bar struct {
	Topic     string  `json:"topic"`
	Intensity float64 `json:"intensity"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// Tick is an axis mark at Pos along its axis
type Tick struct {
	Value string  `json:"value"`
	Label string  `json:"label"`
	Pos   float64 `json:"pos"`
}

// Geometry is everything needed to draw one chart
type Geometry struct {
	Frame       Frame      `json:"frame"`
	InnerWidth  float64    `json:"inner_width"`
	InnerHeight float64    `json:"inner_height"`
	XDomain     []string   `json:"x_domain"`
	Step        float64    `json:"step"`
	Bandwidth   float64    `json:"bandwidth"`
	YDomainRaw  [2]float64 `json:"y_domain_raw"`
	YDomain     [2]float64 `json:"y_domain"`
	XTicks      []Tick     `json:"x_ticks"`
	YTicks      []Tick     `json:"y_ticks"`
	YTitle      string     `json:"y_title"`
	Bars        []Bar      `json:"bars"`
}

// Layout computes the default-frame geometry for the visible records
func Layout(visible []record.Record) Geometry {
	return DefaultFrame().Layout(visible)
}

// Layout computes geometry for the visible records within f
// One bar per record, records sharing a topic share a band.
func (f Frame) Layout(visible []record.Record) Geometry {
	iw, ih := f.InnerWidth(), f.InnerHeight()

	topics := make([]string, 0, len(visible))
	top := 0.0
	for _, r := range visible {
		topics = append(topics, r.Topic)
		top = max(top, r.Intensity)
	}

	x := NewBand(topics, 0, iw, f.Padding)
	raw := NewLinear(0, top, ih, 0)
	y := raw.Nice(f.TickCount)

	g := Geometry{
		Frame:       f,
		InnerWidth:  iw,
		InnerHeight: ih,
		XDomain:     x.Domain(),
		Step:        x.Step(),
		Bandwidth:   x.Bandwidth(),
		YDomainRaw:  raw.Domain(),
		YDomain:     y.Domain(),
		YTitle:      "Intensity",
		XTicks:      make([]Tick, 0, len(x.domain)),
		Bars:        make([]Bar, 0, len(visible)),
	}
	if g.XDomain == nil {
		g.XDomain = []string{}
	}

	for _, d := range x.domain {
		pos, _ := x.Map(d)
		g.XTicks = append(g.XTicks, Tick{Value: d, Label: d, Pos: pos + x.Bandwidth()/2})
	}

	g.YTicks = yTicks(y, f.TickCount)

	for _, r := range visible {
		bx, _ := x.Map(r.Topic)
		by := y.Map(r.Intensity)
		g.Bars = append(g.Bars, Bar{
			Topic:     r.Topic,
			Intensity: r.Intensity,
			X:         bx,
			Y:         by,
			Width:     x.Bandwidth(),
			Height:    ih - by,
		})
	}
	return g
}

func yTicks(y Linear, count int) []Tick {
	values := y.Ticks(count)
	p := message.NewPrinter(language.English)
	format := fmt.Sprintf("%%.%df", precision(y.TickStep(count)))

	out := make([]Tick, 0, len(values))
	for _, v := range values {
		out = append(out, Tick{
			Value: fmt.Sprintf(format, v),
			Label: minus(p.Sprintf(format, v)),
			Pos:   y.Map(v),
		})
	}
	return out
}

// minus swaps the hyphen for a typographic minus sign
func minus(s string) string {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "−" + rest
	}
	return s
}
