package poker

import "testing"

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		hand     string
		expected Category
	}{
		{"2H 3D 5S 9C KD", HighCard},
		{"3C 3D 5C 6H 7S", Pair},
		{"3C 3D 5C 5H 7S", TwoPairs},
		{"5C 5D 5S KC AD", ThreeOfAKind},
		{"6C 7D 8S 9H TD", Straight},
		{"TC JD QS KH AD", Straight},
		{"2S 3S 8S QS AS", Flush},
		{"2H 4S 4C 2D 4H", FullHouse},
		{"9C 9D 9S 9H AD", FourOfAKind},
		{"TH JH QH KH AH", StraightFlush},
		{"2D 3D 4D 5D 6D", StraightFlush},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			h := mustHand(t, tt.hand)
			if got := DetermineCategory(h); got != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, got)
			}
			if h.Category() != tt.expected {
				t.Fatalf("cached category %s, expected %s", h.Category(), tt.expected)
			}
		})
	}
}

func TestAceLowWheelIsNotAStraight(t *testing.T) {
	h := mustHand(t, "AC 2D 3S 4H 5D")
	if h.Category() != HighCard {
		t.Fatalf("expected HIGH_CARD, got %s", h.Category())
	}
	h = mustHand(t, "AH 2H 3H 4H 5H")
	if h.Category() != Flush {
		t.Fatalf("expected FLUSH, got %s", h.Category())
	}
}

func TestCategoryString(t *testing.T) {
	names := []string{"HIGH_CARD", "PAIR", "TWO_PAIRS", "THREE_OF_A_KIND", "STRAIGHT", "FLUSH",
		"FULL_HOUSE", "FOUR_OF_A_KIND", "STRAIGHT_FLUSH"}
	for i, c := range Categories() {
		if c.String() != names[i] {
			t.Fatalf("expected %s, got %s", names[i], c.String())
		}
		if i > 0 && c <= Categories()[i-1] {
			t.Fatalf("categories out of order at %s", c)
		}
	}
	if Category(42).String() != "UNKNOWN" {
		t.Fatal("expected UNKNOWN for an out of range category")
	}
}

// TestDetermineCategoryAllHands classifies every five-card hand of a standard
// deck. The ace-low wheel counts as high card, or flush when suited.
func TestDetermineCategoryAllHands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive classification in short mode")
	}

	var deck []string
	for _, r := range "23456789TJQKA" {
		for _, s := range "CDHS" {
			deck = append(deck, string(r)+string(s))
		}
	}

	expected := map[Category]int{
		StraightFlush: 36,
		FourOfAKind:   624,
		FullHouse:     3744,
		Flush:         5112,
		Straight:      9180,
		ThreeOfAKind:  54912,
		TwoPairs:      123552,
		Pair:          1098240,
		HighCard:      1303560,
	}

	counts := make(map[Category]int)
	tokens := make([]string, HandSize)
	n := len(deck)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						tokens[0], tokens[1], tokens[2], tokens[3], tokens[4] = deck[a], deck[b], deck[c], deck[d], deck[e]
						h, err := NewHand(tokens)
						if err != nil {
							t.Fatal(err)
						}
						counts[h.Category()]++
					}
				}
			}
		}
	}

	total := 0
	for cat, want := range expected {
		if counts[cat] != want {
			t.Errorf("%s: expected %d hands, got %d", cat, want, counts[cat])
		}
		total += counts[cat]
	}
	if total != 2598960 {
		t.Fatalf("expected 2598960 hands, got %d", total)
	}
}
