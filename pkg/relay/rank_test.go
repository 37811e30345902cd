package relay

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankDescending(t *testing.T) {
	list := []Ranked{
		{URL: "wss://low.example.com/", Scoring: Scoring{Score: 0.5}},
		{URL: "wss://high.example.com/", Scoring: Scoring{Score: 2.5}},
		{URL: "wss://mid.example.com/", Scoring: Scoring{Score: 1.5}},
	}

	out, err := Rank(list)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.True(t, sort.SliceIsSorted(out, func(i, j int) bool {
		return out[i].Scoring.Score > out[j].Scoring.Score
	}))
	assert.Equal(t, "wss://high.example.com/", out[0].URL)
}

func TestRankTieBreakByURL(t *testing.T) {
	list := []Ranked{
		{URL: "wss://bbb.example.com/", Scoring: Scoring{Score: 1.0}},
		{URL: "wss://aaa.example.com/", Scoring: Scoring{Score: 1.0}},
	}

	out, err := Rank(list)
	require.NoError(t, err)
	assert.Equal(t, "wss://aaa.example.com/", out[0].URL)
	assert.Equal(t, "wss://bbb.example.com/", out[1].URL)
}

func TestRankTruncatesToTopN(t *testing.T) {
	list := make([]Ranked, 0, TopN+5)
	for i := 0; i < TopN+5; i++ {
		list = append(list, Ranked{
			URL:     fmt.Sprintf("wss://relay%02d.example.com/", i),
			Scoring: Scoring{Score: float64(i)},
		})
	}

	out, err := Rank(list)
	require.NoError(t, err)
	require.Len(t, out, TopN)
	assert.Equal(t, fmt.Sprintf("wss://relay%02d.example.com/", TopN+4), out[0].URL)
}

func TestRankShortListStaysWhole(t *testing.T) {
	out, err := Rank([]Ranked{{URL: "wss://only.example.com/", Scoring: Scoring{Score: 1.0}}})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestRankEmpty(t *testing.T) {
	out, err := Rank([]Ranked{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRankNaNIsFatal(t *testing.T) {
	list := []Ranked{
		{URL: "wss://ok.example.com/", Scoring: Scoring{Score: 1.0}},
		{URL: "wss://bad.example.com/", Scoring: Scoring{Score: math.NaN()}},
	}

	out, err := Rank(list)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "wss://bad.example.com/")
}
