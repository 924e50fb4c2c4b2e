package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kolpa/ulanzi-election/internal/domain"
)

func TestBars_EmptyInput_NoRectangles(t *testing.T) {
	assert.Empty(t, Bars(nil, 5))
	assert.Empty(t, Bars([]domain.PartyResult{}, 0))
}

func TestBars_SingleParty(t *testing.T) {
	rects := Bars([]domain.PartyResult{{Name: "A", Percentage: 50, Color: "AA0000"}}, 5)

	require.Len(t, rects, 3)
	assert.Equal(t, domain.Rect{X: 0, Y: 0, Width: 20, Height: 8, Color: "000000"}, rects[0])
	// Sole party is the maximum, so its bar spans the full chart width.
	assert.Equal(t, domain.Rect{X: 0, Y: 0, Width: 20, Height: 8, Color: "AA0000"}, rects[1])
	assert.Equal(t, domain.Rect{X: 20, Y: 0, Width: 1, Height: 8, Color: "00FF00"}, rects[2])
}

func TestBars_ProportionalWidths(t *testing.T) {
	rects := Bars([]domain.PartyResult{
		{Name: "A", Percentage: 60, Color: "FF0000"},
		{Name: "B", Percentage: 40, Color: "0000FF"},
	}, 5)

	require.Len(t, rects, 5)
	assert.Equal(t, domain.Rect{X: 0, Y: 0, Width: 20, Height: 8, Color: "000000"}, rects[0])
	assert.Equal(t, domain.Rect{X: 0, Y: 0, Width: 20, Height: 4, Color: "FF0000"}, rects[1])
	assert.Equal(t, domain.Rect{X: 20, Y: 0, Width: 1, Height: 4, Color: "00FF00"}, rects[2])
	// ceil(40/60*20) = 14
	assert.Equal(t, domain.Rect{X: 0, Y: 4, Width: 14, Height: 4, Color: "0000FF"}, rects[3])
	assert.Equal(t, domain.Rect{X: 14, Y: 4, Width: 1, Height: 4, Color: "00FF00"}, rects[4])
}

func TestBars_IndicatorThreshold(t *testing.T) {
	rects := Bars([]domain.PartyResult{
		{Name: "A", Percentage: 60, Color: "FF0000"},
		{Name: "B", Percentage: 5, Color: "0000FF"},
		{Name: "C", Percentage: 3, Color: "00AA00"},
	}, 5)

	// Indicators are every third rectangle after the background.
	assert.Equal(t, "00FF00", rects[2].Color)
	// Exactly at the threshold is not above it.
	assert.Equal(t, "FF0000", rects[4].Color)
	assert.Equal(t, "FF0000", rects[6].Color)
}

func TestBars_BandHeightTruncates(t *testing.T) {
	parties := []domain.PartyResult{
		{Percentage: 30, Color: "111111"},
		{Percentage: 20, Color: "222222"},
		{Percentage: 10, Color: "333333"},
	}
	rects := Bars(parties, 5)

	// 8/3 truncates to 2; the chart occupies 6 of 8 rows.
	require.Len(t, rects, 7)
	assert.Equal(t, 2, rects[1].Height)
	assert.Equal(t, 0, rects[1].Y)
	assert.Equal(t, 2, rects[3].Y)
	assert.Equal(t, 4, rects[5].Y)
}

func TestBars_AllZeroPercentages(t *testing.T) {
	rects := Bars([]domain.PartyResult{
		{Percentage: 0, Color: "111111"},
		{Percentage: 0, Color: "222222"},
	}, 5)

	require.Len(t, rects, 5)
	assert.Equal(t, 0, rects[1].Width)
	assert.Equal(t, 0, rects[3].Width)
	// Indicators still render at the band origin.
	assert.Equal(t, domain.Rect{X: 0, Y: 0, Width: 1, Height: 4, Color: "FF0000"}, rects[2])
}

func TestText_TimestampThenParties(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	data := &domain.ElectionData{
		Timestamp: time.Date(2025, 1, 1, 11, 34, 0, 0, time.UTC),
		Parties: []domain.PartyResult{
			{Name: "A", Percentage: 60, Color: "FF0000"},
			{Name: "B", Percentage: 40, Color: "0000FF"},
		},
	}

	fragments := Text(data, cet)

	require.Len(t, fragments, 3)
	assert.Equal(t, domain.TextFragment{Text: "12:34 ", Color: "FFFFFF"}, fragments[0])
	assert.Equal(t, domain.TextFragment{Text: "A ", Color: "FF0000"}, fragments[1])
	assert.Equal(t, domain.TextFragment{Text: "B ", Color: "0000FF"}, fragments[2])
}

func TestAssemble_FixedTextOffset(t *testing.T) {
	packet := Assemble(nil, nil)
	assert.Equal(t, 8, packet.TextOffset)

	packet = Assemble(
		[]domain.Rect{{Width: 20, Height: 8, Color: "000000"}},
		[]domain.TextFragment{{Text: "12:34 ", Color: "FFFFFF"}},
	)
	assert.Equal(t, 8, packet.TextOffset)
	assert.Len(t, packet.Draw, 1)
	assert.Len(t, packet.Text, 1)
}

func TestFallback_TextOnly(t *testing.T) {
	packet := Fallback()
	assert.Empty(t, packet.Draw)
	assert.Zero(t, packet.TextOffset)
	require.Len(t, packet.Text, 1)
	assert.Equal(t, domain.TextFragment{Text: "No data", Color: "FF0000"}, packet.Text[0])
}
