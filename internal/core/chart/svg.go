package chart

import (
	"bytes"
	"html/template"
	"io"
	"math"
	"strconv"

	"piptrade/internal/core/record"
)

// Surface is a clearable in-memory drawing target
type Surface struct {
	buf   bytes.Buffer
	draws int
}

// NewSurface returns an empty surface
func NewSurface() *Surface { return &Surface{} }

// Clear drops everything drawn so far
func (s *Surface) Clear() { s.buf.Reset() }

// Bytes returns the current document
func (s *Surface) Bytes() []byte { return bytes.Clone(s.buf.Bytes()) }

// Len is the size of the current document
func (s *Surface) Len() int { return s.buf.Len() }

// Draws counts completed renders
func (s *Surface) Draws() int { return s.draws }

// WriteTo copies the current document to w
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.buf.Bytes())
	return int64(n), err
}

// Render clears s and draws the chart for the visible records onto it
func Render(s *Surface, visible []record.Record) (Geometry, error) {
	g := Layout(visible)
	s.Clear()
	if err := g.SVG(&s.buf); err != nil {
		s.Clear()
		return g, err
	}
	s.draws++
	return g, nil
}

// SVG writes g as a standalone SVG document
func (g Geometry) SVG(w io.Writer) error {
	return svgTmpl.Execute(w, g)
}

// num prints coordinates with at most four decimals
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func half(v float64) string { return num(v + 0.5) }

var svgTmpl = template.Must(template.New("chart").Funcs(template.FuncMap{
	"num":  num,
	"half": half,
}).Parse(`<svg xmlns="http://www.w3.org/2000/svg" width="{{num .Frame.CanvasWidth}}" height="{{num .Frame.CanvasHeight}}">
<g transform="translate({{num .Frame.Margin.Left}},{{num .Frame.Margin.Top}})">
<g class="x axis" transform="translate(0,{{num .InnerHeight}})" fill="none" font-size="10" font-family="sans-serif" text-anchor="middle">
<path class="domain" stroke="currentColor" d="M0.5,6V0.5H{{half .InnerWidth}}V6"></path>
{{- range .XTicks}}
<g class="tick" opacity="1" transform="translate({{num .Pos}},0)"><line stroke="currentColor" y2="6"></line><text fill="currentColor" y="9" dx="-.8em" dy=".15em" text-anchor="end" transform="rotate(-45)">{{.Label}}</text></g>
{{- end}}
</g>
<g class="y axis" fill="none" font-size="10" font-family="sans-serif" text-anchor="end">
<path class="domain" stroke="currentColor" d="M-6,{{half .InnerHeight}}H0.5V0.5H-6"></path>
{{- range .YTicks}}
<g class="tick" opacity="1" transform="translate(0,{{num .Pos}})"><line stroke="currentColor" x2="-6"></line><text fill="currentColor" x="-9" dy="0.32em">{{.Label}}</text></g>
{{- end}}
<text fill="#000" transform="rotate(-90)" y="6" dy="0.71em" text-anchor="end">{{.YTitle}}</text>
</g>
{{- range .Bars}}
<rect class="bar" fill="steelblue" x="{{num .X}}" y="{{num .Y}}" width="{{num .Width}}" height="{{num .Height}}"></rect>
{{- end}}
</g>
</svg>
`))
