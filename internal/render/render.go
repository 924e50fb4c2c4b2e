// Package render turns processed election snapshots into display packets.
// All functions are pure; the geometry targets an 8x32 pixel matrix whose
// left 20x8 region holds the bar chart.
package render

import (
	"math"
	"time"

	"github.com/Kolpa/ulanzi-election/internal/domain"
)

const (
	chartWidth  = 20
	chartHeight = 8

	// textOffset is where the scrolling text starts, a fixed layout constant
	// of the display, not derived from content.
	textOffset = 8

	colorBackground = "000000"
	colorTimestamp  = "FFFFFF"
	colorAbove      = "00FF00"
	colorBelow      = "FF0000"
)

// Bars renders the bar-chart layer. A background clear over the full chart
// region comes first so stale pixels never show through. Each party then gets
// an equal horizontal band (integer division, so the bands may not cover the
// full height when the party count does not divide 8), a bar proportional to
// the largest percentage present, and a 1-unit indicator at the bar's right
// edge: green above the threshold, red at or below it. An empty input renders
// nothing at all, not even the background clear.
func Bars(parties []domain.PartyResult, threshold float64) []domain.Rect {
	if len(parties) == 0 {
		return nil
	}

	bandHeight := chartHeight / len(parties)
	rects := make([]domain.Rect, 0, 1+2*len(parties))
	rects = append(rects, domain.Rect{Width: chartWidth, Height: chartHeight, Color: colorBackground})

	var maxPercentage float64
	for _, party := range parties {
		if party.Percentage > maxPercentage {
			maxPercentage = party.Percentage
		}
	}

	for i, party := range parties {
		// Zero maximum means every bar is empty; only indicators render.
		width := 0
		if maxPercentage > 0 {
			width = int(math.Ceil(party.Percentage / maxPercentage * chartWidth))
		}
		y := i * bandHeight
		rects = append(rects, domain.Rect{Y: y, Width: width, Height: bandHeight, Color: party.Color})

		indicator := colorBelow
		if party.Percentage > threshold {
			indicator = colorAbove
		}
		rects = append(rects, domain.Rect{X: width, Y: y, Width: 1, Height: bandHeight, Color: indicator})
	}

	return rects
}

// Text renders the scrolling text layer: the snapshot time as 24-hour HH:MM
// in the display's timezone, then each party's abbreviation in its bar color.
// Fragment order is the left-to-right scroll order.
func Text(data *domain.ElectionData, loc *time.Location) []domain.TextFragment {
	fragments := make([]domain.TextFragment, 0, 1+len(data.Parties))
	fragments = append(fragments, domain.TextFragment{
		Text:  data.Timestamp.In(loc).Format("15:04") + " ",
		Color: colorTimestamp,
	})

	for _, party := range data.Parties {
		fragments = append(fragments, domain.TextFragment{Text: party.Name + " ", Color: party.Color})
	}

	return fragments
}

// Assemble combines the two layers into a display packet.
func Assemble(bars []domain.Rect, text []domain.TextFragment) domain.Packet {
	return domain.Packet{Draw: bars, Text: text, TextOffset: textOffset}
}

// Fallback is the packet shown when no usable snapshot exists.
func Fallback() domain.Packet {
	return domain.Packet{Text: []domain.TextFragment{{Text: "No data", Color: colorBelow}}}
}
