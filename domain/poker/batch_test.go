package poker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatches() []Match {
	return []Match{
		NewMatch(strings.Fields("2H 3D 5S 9C KD"), strings.Fields("2C 3H 4S 8C AH")),
		NewMatch(strings.Fields("2H 4S 4C 2D 4H"), strings.Fields("2S 3S 8S QS AS")),
		NewMatch(strings.Fields("2H 3D 5S 9C KD"), strings.Fields("2C 3H 5C 9S KH")),
		NewMatch(strings.Fields("3C 3D 5C 6H 7S"), strings.Fields("2C 2H 6C 7D 9S")),
		NewMatch(strings.Fields("5C 5D 5S KC AD"), strings.Fields("2S 2D 2H KD AC")),
		NewMatch(strings.Fields("2H 3D 5S 9C AH"), strings.Fields("2C 3H 4S 8C AH")),
		NewMatch(strings.Fields("2H 3D 5S 9C"), strings.Fields("2C 3H 4S 8C AH")),
	}
}

func TestNewMatchAssignsID(t *testing.T) {
	a := NewMatch(nil, nil)
	b := NewMatch(nil, nil)
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestPlayAllPreservesOrder(t *testing.T) {
	matches := testMatches()
	for _, workers := range []int{1, 3, 16} {
		results := NewReferee(WithWorkers(workers)).PlayAll(context.Background(), matches)
		require.Len(t, results, len(matches))

		expected := []string{
			"PLAYER [WHITE] WINS! REASON = HIGH CARD: [ACE]",
			"PLAYER [BLACK] WINS! REASON = [FULL_HOUSE] OVER [FLUSH]",
			"TIE",
			"PLAYER [BLACK] WINS! REASON = [PAIR] value of [6] over [PAIR] value of [4]",
			"PLAYER [BLACK] WINS! REASON = [THREE_OF_A_KIND] value of [15] over [THREE_OF_A_KIND] value of [6]",
		}
		for i, want := range expected {
			assert.Equal(t, matches[i].ID, results[i].Match.ID)
			require.NoError(t, results[i].Err)
			assert.Equal(t, want, results[i].Outcome.String())
		}
		assert.ErrorIs(t, results[5].Err, ErrDuplicateCard)
		assert.ErrorIs(t, results[6].Err, ErrInvalidHandSize)
	}
}

func TestPlayAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matches := testMatches()
	results := NewReferee(WithWorkers(2)).PlayAll(ctx, matches)
	require.Len(t, results, len(matches))
	for i, res := range results {
		assert.Equal(t, matches[i].ID, res.Match.ID)
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestPlayAllEmpty(t *testing.T) {
	assert.Empty(t, NewReferee().PlayAll(context.Background(), nil))
}

func TestPlayAllZeroValueReferee(t *testing.T) {
	matches := testMatches()
	done := make(chan []Result, 1)
	go func() {
		done <- Referee{}.PlayAll(context.Background(), matches)
	}()

	select {
	case results := <-done:
		require.Len(t, results, len(matches))
		assert.Equal(t, "PLAYER [WHITE] WINS! REASON = HIGH CARD: [ACE]", results[0].Outcome.String())
		assert.ErrorIs(t, results[6].Err, ErrInvalidHandSize)
	case <-time.After(5 * time.Second):
		t.Fatal("PlayAll did not return with a zero-value Referee")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, res := range (Referee{}).PlayAll(ctx, matches) {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}
