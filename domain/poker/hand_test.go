package poker

import (
	"errors"
	"strings"
	"testing"
)

func mustHand(t testing.TB, tokens string) *Hand {
	t.Helper()
	h, err := NewHand(strings.Fields(tokens))
	if err != nil {
		t.Fatalf("hand %q: %v", tokens, err)
	}
	return h
}

func ranksOf(cards []Card) []int {
	ranks := make([]int, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank()
	}
	return ranks
}

func TestNewHandSize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		absent bool
	}{
		{"absent", nil, true},
		{"empty", []string{}, false},
		{"four cards", strings.Fields("2H 3D 5S 9C"), false},
		{"six cards", strings.Fields("2H 3D 5S 9C KD AH"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHand(tt.tokens)
			if !errors.Is(err, ErrInvalidHandSize) {
				t.Fatalf("expected ErrInvalidHandSize, got %v", err)
			}
			var sizeErr *HandSizeError
			if !errors.As(err, &sizeErr) {
				t.Fatalf("expected *HandSizeError, got %T", err)
			}
			if sizeErr.Absent != tt.absent || (!tt.absent && sizeErr.Size != len(tt.tokens)) {
				t.Fatalf("unexpected error contents: %+v", sizeErr)
			}
		})
	}

	if _, err := NewHand(strings.Fields("2H 3D 5S 9C KD")); err != nil {
		t.Fatalf("five cards must be accepted: %v", err)
	}
}

func TestNewHandWrapsCardErrors(t *testing.T) {
	_, err := NewHand(strings.Fields("2H 3D 5Z 9C KD"))
	if !errors.Is(err, ErrUnrecognizedSuit) {
		t.Fatalf("expected ErrUnrecognizedSuit, got %v", err)
	}
	if !strings.Contains(err.Error(), "5Z") {
		t.Fatalf("expected offending token in %q", err.Error())
	}
}

func TestHandSizeErrorMessage(t *testing.T) {
	err := &HandSizeError{Size: 4}
	expected := "poker hand cannot be less than or greater than 5 cards, size of hand parsed: [4]"
	if err.Error() != expected {
		t.Fatalf("expected %q, got %q", expected, err.Error())
	}
}

func TestHandCardsKeepsInputOrder(t *testing.T) {
	h := mustHand(t, "KD 2H 9C 3D 5S")
	cards := h.Cards()
	if h.String() != "KD 2H 9C 3D 5S" {
		t.Fatalf("unexpected order: %s", h.String())
	}
	cards[0] = Card{}
	if h.Cards()[0].Rank() != King {
		t.Fatal("Cards must return a copy")
	}
}

func TestHandPredicates(t *testing.T) {
	tests := []struct {
		hand                                                  string
		pair, twoPairs, three, four, full, straight, flush, sf bool
	}{
		{"2H 3D 5S 9C KD", false, false, false, false, false, false, false, false},
		{"3C 3D 5C 6H 7S", true, false, false, false, false, false, false, false},
		{"3C 3D 5C 5H 7S", true, true, false, false, false, false, false, false},
		{"5C 5D 5S KC AD", false, false, true, false, false, false, false, false},
		{"2H 4S 4C 2D 4H", true, false, true, false, true, false, false, false},
		{"9C 9D 9S 9H AD", false, false, false, true, false, false, false, false},
		{"2S 3S 8S QS AS", false, false, false, false, false, false, true, false},
		{"6C 7D 8S 9H TD", false, false, false, false, false, true, false, false},
		{"TH JH QH KH AH", false, false, false, false, false, true, true, true},
		{"AC 2D 3S 4H 5D", false, false, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h := mustHand(t, tt.hand)
			got := []bool{h.HasPair(), h.HasTwoPairs(), h.HasThreeOfAKind(), h.HasFourOfAKind(),
				h.HasFullHouse(), h.HasStraight(), h.HasFlush(), h.HasStraightFlush()}
			want := []bool{tt.pair, tt.twoPairs, tt.three, tt.four, tt.full, tt.straight, tt.flush, tt.sf}
			names := []string{"pair", "two pairs", "three", "four", "full house", "straight", "flush", "straight flush"}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("%s: expected %v, got %v", names[i], want[i], got[i])
				}
			}
		})
	}
}

func TestHandExtractors(t *testing.T) {
	h := mustHand(t, "2H 4S 4C 2D 4H")
	if r := ranksOf(h.FullHouseCards()); len(r) != 3 || r[0] != 4 {
		t.Fatalf("expected the triple of fours, got %v", r)
	}
	if r := ranksOf(h.PairCards()); len(r) != 2 || r[0] != 2 {
		t.Fatalf("expected the pair of twos, got %v", r)
	}
	if h.FourOfAKindCards() != nil {
		t.Fatal("expected no four of a kind")
	}

	h = mustHand(t, "3C KD 3D KS 7H")
	pairs := h.TwoPairsCards()
	if len(pairs) != 2 || pairs[0][0].Rank() != King || pairs[1][0].Rank() != 3 {
		t.Fatalf("expected kings then threes, got %v", pairs)
	}

	h = mustHand(t, "9C 9D 9S 9H AD")
	if r := ranksOf(h.CardsForExpectedSize(4)); len(r) != 4 || r[0] != 9 {
		t.Fatalf("expected four nines, got %v", r)
	}
	if r := ranksOf(h.CardsForExpectedSize(1)); len(r) != 1 || r[0] != Ace {
		t.Fatalf("expected the ace, got %v", r)
	}
}

func TestHandHighCardWalk(t *testing.T) {
	h := mustHand(t, "2H KD 5S 9C 3D")
	if h.HighCard().Rank() != King {
		t.Fatalf("expected king, got %v", h.HighCard())
	}

	var seen []Card
	expected := []int{King, 9, 5, 3, 2}
	for _, rank := range expected {
		c, ok := h.NextHighestCard(seen...)
		if !ok || c.Rank() != rank {
			t.Fatalf("expected rank %d, got %v", rank, c)
		}
		seen = append(seen, c)
	}
	if _, ok := h.NextHighestCard(seen...); ok {
		t.Fatal("expected no card left")
	}
}

func TestHandUnrecognizedCards(t *testing.T) {
	h := mustHand(t, "2H XD 5S 9C 1D")
	bad := h.UnrecognizedCards()
	if len(bad) != 2 || bad[0].String() != "XD" || bad[1].String() != "1D" {
		t.Fatalf("unexpected unrecognized cards: %v", bad)
	}
	if h.HighCard().Rank() != 9 {
		t.Fatalf("expected nine high, got %v", h.HighCard())
	}
}
