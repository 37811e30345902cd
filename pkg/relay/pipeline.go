package relay

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// maxLineBytes bounds a single feed line. NIP-11 documents are small;
// anything near this size is garbage.
const maxLineBytes = 1024 * 1024

// Run reads newline-delimited relay records from r, keeps the eligible
// ones, scores them against now, and returns the ranked shortlist.
// Records are consumed strictly in arrival order and held in memory
// until the sort; the population is expected to be small.
//
// Any line that does not decode aborts the whole run with the line
// number in the error. The feed is a trusted export, not user input, so
// there is no skip-and-continue mode.
func Run(r io.Reader, now time.Time) ([]Ranked, error) {
	list := make([]Ranked, 0)
	var records, eligible int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		rel, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records++

		c, ok := Eligible(rel)
		if !ok {
			continue
		}
		eligible++

		list = append(list, Ranked{URL: rel.URL, Scoring: Score(c, now)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	slog.Debug("scored candidates", "records", records, "eligible", eligible)

	return Rank(list)
}
