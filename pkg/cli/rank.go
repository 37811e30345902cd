package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/relayrank/relayrank/pkg/relay"
	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// cmdRank is the app's only action: rank the relay feed on stdin and
// write the shortlist to stdout. The ranking itself takes no
// configuration; the current time is sampled once for the whole run.
func cmdRank(_ *urfave.Context) error {
	ranked, err := relay.Run(os.Stdin, time.Now())
	if err != nil {
		return err
	}
	return render(os.Stdout, ranked)
}

func render(w io.Writer, list []relay.Ranked) error {
	switch outputFormat {
	case formatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(list)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(list)
	default:
		for _, r := range list {
			_, err := fmt.Fprintf(w, "%s score=%.6f age_seconds=%d attempts=%d successes=%d success_rate=%.4f\n",
				r.URL, r.Scoring.Score, r.Scoring.AgeSeconds, r.Scoring.Attempts, r.Scoring.Successes, r.Scoring.SuccessRate)
			if err != nil {
				return err
			}
		}
		return nil
	}
}
