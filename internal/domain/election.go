package domain

import (
	"context"
	"time"
)

// PartyResult is one contesting party's current standing.
type PartyResult struct {
	Name       string
	Percentage float64
	Color      string
}

// ElectionData is the processed snapshot of one poll cycle. Parties are
// sorted descending by percentage; that order is the authoritative render
// order. A snapshot is built fresh each cycle and discarded after one packet.
type ElectionData struct {
	Timestamp time.Time
	Parties   []PartyResult
}

// ResultsFetcher retrieves the raw results document from the elections API.
type ResultsFetcher interface {
	FetchResults(ctx context.Context) ([]byte, error)
}

// PacketPublisher delivers one packet to the display.
type PacketPublisher interface {
	Publish(ctx context.Context, packet Packet) error
}
