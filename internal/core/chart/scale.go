package chart

import "math"

// Band maps categories onto evenly spaced bands of a continuous range
type Band struct {
	domain       []string
	index        map[string]int
	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	align        float64

	start     float64
	step      float64
	bandwidth float64
}

// NewBand builds a band scale over the deduplicated domain
// padding is applied both between and around bands, bands are centered.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	b := &Band{
		index:        make(map[string]int, len(domain)),
		r0:           r0,
		r1:           r1,
		paddingInner: padding,
		paddingOuter: padding,
		align:        0.5,
	}
	for _, d := range domain {
		if _, ok := b.index[d]; ok {
			continue
		}
		b.index[d] = len(b.domain)
		b.domain = append(b.domain, d)
	}
	b.rescale()
	return b
}

func (b *Band) rescale() {
	n := float64(len(b.domain))
	start, stop := b.r0, b.r1
	if b.r1 < b.r0 {
		start, stop = b.r1, b.r0
	}
	b.step = (stop - start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	start += (stop - start - b.step*(n-b.paddingInner)) * b.align
	b.bandwidth = b.step * (1 - b.paddingInner)
	b.start = start
}

// Domain returns the deduplicated categories
func (b *Band) Domain() []string { return append([]string(nil), b.domain...) }

// Step is the distance between the starts of adjacent bands
func (b *Band) Step() float64 { return b.step }

// Bandwidth is the width of one band
func (b *Band) Bandwidth() float64 { return b.bandwidth }

// Map returns the start of v's band, ok is false for unknown categories
func (b *Band) Map(v string) (float64, bool) {
	i, ok := b.index[v]
	if !ok {
		return 0, false
	}
	if b.r1 < b.r0 {
		i = len(b.domain) - 1 - i
	}
	return b.start + b.step*float64(i), true
}

// Linear maps a numeric domain onto a range by linear interpolation
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear returns a linear scale from [d0,d1] to [r0,r1]
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the current domain
func (l Linear) Domain() [2]float64 { return [2]float64{l.d0, l.d1} }

// Range returns the output range
func (l Linear) Range() [2]float64 { return [2]float64{l.r0, l.r1} }

// Map projects v; a degenerate domain maps everything to the range start
func (l Linear) Map(v float64) float64 {
	if l.d1 == l.d0 {
		return l.r0
	}
	t := (v - l.d0) / (l.d1 - l.d0)
	return l.r0 + t*(l.r1-l.r0)
}

// Nice extends the domain outward to round tick boundaries
// The domain is left alone when the tick step does not settle.
func (l Linear) Nice(count int) Linear {
	start, stop := l.d0, l.d1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	prestep := math.NaN()
	for range 10 {
		step := tickIncrement(start, stop, count)
		if step == prestep {
			return l.withDomain(start, stop, reverse)
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return l
		}
		prestep = step
	}
	return l
}

func (l Linear) withDomain(start, stop float64, reverse bool) Linear {
	// floor/ceil on negative steps can yield -0
	if start == 0 {
		start = 0
	}
	if stop == 0 {
		stop = 0
	}
	if reverse {
		start, stop = stop, start
	}
	l.d0, l.d1 = start, stop
	return l
}

// Ticks returns roughly count round values spanning the domain
func (l Linear) Ticks(count int) []float64 {
	return ticks(l.d0, l.d1, count)
}

// TickStep returns the spacing Ticks(count) uses
func (l Linear) TickStep(count int) float64 {
	return tickStep(l.d0, l.d1, count)
}
