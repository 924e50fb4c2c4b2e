// Package election parses raw results documents from the elections API into
// processed snapshots. The API's JSON is loosely shaped, so every field is
// modelled as optional and resolved with explicit parse-or-skip rules.
package election

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"

	"github.com/Kolpa/ulanzi-election/internal/domain"
)

const (
	targetParties = "parties"
	fallbackColor = "000000"
)

// identifier matches the API's loosely typed ids, which show up both as JSON
// strings and as plain numbers depending on the endpoint vintage.
type identifier string

func (id *identifier) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = identifier(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = identifier(n.String())
	return nil
}

type rawDocument struct {
	Election rawElection `json:"election"`
	Parties  []rawParty  `json:"parties"`
}

type rawElection struct {
	Contest []rawContest `json:"contest"`
}

type rawContest struct {
	ResultsOverall rawResultsOverall `json:"results_overall"`
}

type rawResultsOverall struct {
	Latest rawLatest `json:"latest"`
}

type rawLatest struct {
	StatusDate string      `json:"status_date"`
	Results    []rawResult `json:"results"`
}

type rawResult struct {
	Target   string       `json:"target"`
	TargetID identifier   `json:"target_id"`
	Percent  []rawPercent `json:"percent"`
}

type rawPercent struct {
	Value rawValue `json:"value"`
}

type rawValue struct {
	Absolute float64 `json:"absolute"`
}

type rawParty struct {
	ID           identifier `json:"id"`
	Abbreviation string     `json:"abbreviation"`
	Color        string     `json:"color"`
}

// Parse decodes a raw results document into a processed snapshot.
//
// A document without a status_date yields domain.ErrNoData: the status date
// is the only clock for freshness, so the snapshot is unusable without it.
// A status_date that is present but unparseable is a hard error instead;
// guessing a timestamp would let stale results render as current. A
// status_date that carries no offset of its own is taken in loc, the
// display's timezone.
//
// Result entries contribute a party only when they target parties, carry a
// non-empty percent list and reference a party present in the catalog.
// Anything else is skipped silently. The percentage is the first percent
// entry's value.absolute; zero is a valid value.
func Parse(raw []byte, loc *time.Location) (*domain.ElectionData, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode results document: %w", err)
	}

	if len(doc.Election.Contest) == 0 {
		return nil, domain.ErrNoData
	}
	latest := doc.Election.Contest[0].ResultsOverall.Latest

	if latest.StatusDate == "" {
		return nil, domain.ErrNoData
	}
	timestamp, err := dateparse.ParseIn(latest.StatusDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse status date %q: %w", latest.StatusDate, err)
	}

	catalog := make(map[identifier]rawParty, len(doc.Parties))
	for _, party := range doc.Parties {
		catalog[party.ID] = party
	}

	parties := make([]domain.PartyResult, 0, len(latest.Results))
	for _, result := range latest.Results {
		if result.Target != targetParties || len(result.Percent) == 0 {
			continue
		}
		party, ok := catalog[result.TargetID]
		if !ok {
			continue
		}

		color := party.Color
		if color == "" {
			color = fallbackColor
		}

		parties = append(parties, domain.PartyResult{
			Name:       party.Abbreviation,
			Percentage: result.Percent[0].Value.Absolute,
			Color:      color,
		})
	}

	// Equal percentages keep their source order.
	sort.SliceStable(parties, func(i, j int) bool {
		return parties[i].Percentage > parties[j].Percentage
	})

	return &domain.ElectionData{Timestamp: timestamp, Parties: parties}, nil
}
