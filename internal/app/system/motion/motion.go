// Package motion turns animation parameters into data attributes.
//
// The server never animates anything itself. It decides delays, offsets and
// ranges, writes them as data-* attributes, and public/js/site.js drives the
// reveal, curtain, parallax, word-fade and marquee effects in the browser.
package motion

import (
	"fmt"
	"html/template"
	"strings"
)

// Easing curves (cubic-bezier control points) understood by site.js.
const (
	EaseOut  = "0.215,0.61,0.355,1"
	EaseExpo = "0.16,1,0.3,1"
)

const (
	defaultDuration = 0.8
	defaultOffset   = 40
)

// Reveal describes a one-shot fade/translate played when an element enters
// the viewport.
type Reveal struct {
	Delay    float64 // seconds
	Duration float64 // seconds
	X, Y     float64 // starting offset in px
	Ease     string
}

// Up is the default reveal: 40px rise over 0.8s.
func Up(delay float64) Reveal {
	return Reveal{Delay: delay, Duration: defaultDuration, Y: defaultOffset, Ease: EaseOut}
}

// Slide reveals horizontally, from the left when fromLeft is set.
func Slide(delay float64, fromLeft bool) Reveal {
	x := float64(defaultOffset)
	if fromLeft {
		x = -x
	}
	return Reveal{Delay: delay, Duration: defaultDuration, X: x, Ease: EaseOut}
}

// Curtain slides text up from behind a clipping parent.
func Curtain(delay float64) Reveal {
	return Reveal{Delay: delay, Duration: 1, Y: 100, Ease: EaseExpo}
}

// Stagger offsets the base reveal by index*step seconds.
func Stagger(base Reveal, index int, step float64) Reveal {
	base.Delay += float64(index) * step
	return base
}

// Attrs renders the reveal for use inside a tag.
func (r Reveal) Attrs() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(
		`data-reveal data-delay="%.2f" data-duration="%.2f" data-x="%g" data-y="%g" data-ease="%s"`,
		r.Delay, r.Duration, r.X, r.Y, r.Ease))
}

// Parallax maps scroll progress [0,1] of an element onto a vertical
// translation from From to To pixels.
type Parallax struct {
	From, To float64
}

// Attrs renders the parallax range for use inside a tag.
func (p Parallax) Attrs() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(`data-parallax data-from="%g" data-to="%g"`, p.From, p.To))
}

// Word is one word of scroll-faded copy with its share of scroll progress.
type Word struct {
	Text       string
	Start, End float64
}

// Attrs renders the word's progress range for use inside a tag.
func (w Word) Attrs() template.HTMLAttr {
	return template.HTMLAttr(fmt.Sprintf(`data-word data-start="%.4f" data-end="%.4f"`, w.Start, w.End))
}

// Words splits text on whitespace and gives word i of n the progress range
// [i/n, (i+1)/n].
func Words(text string) []Word {
	fields := strings.Fields(text)
	n := float64(len(fields))
	out := make([]Word, len(fields))
	for i, f := range fields {
		out[i] = Word{
			Text:  f,
			Start: float64(i) / n,
			End:   float64(i+1) / n,
		}
	}
	return out
}

// Marquee repeats items once so a -50% translation loops seamlessly.
func Marquee(items []string) []string {
	out := make([]string, 0, 2*len(items))
	out = append(out, items...)
	return append(out, items...)
}

// Columns splits items into even- and odd-indexed columns, keeping at most
// perColumn in each.
func Columns[T any](items []T, perColumn int) (left, right []T) {
	for i, it := range items {
		if i%2 == 0 {
			if len(left) < perColumn {
				left = append(left, it)
			}
			continue
		}
		if len(right) < perColumn {
			right = append(right, it)
		}
	}
	return left, right
}

// Counter formats a count as two digits, or "-" while loading.
func Counter(n int, loading bool) string {
	if loading {
		return "-"
	}
	return fmt.Sprintf("%02d", n)
}
