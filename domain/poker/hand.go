package poker

import (
	"fmt"
	"slices"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is an immutable five-card hand.
//
// The cards are grouped by rank once, at construction, and the category is
// derived from those groups right after; every predicate and extractor reads
// the memoized grouping.
type Hand struct {
	cards    [HandSize]Card
	groups   map[int][]Card // rank -> cards sharing it
	ranks    []int          // distinct ranks, ascending
	category Category
}

// NewHand builds a Hand from exactly HandSize two-character tokens.
// It fails with a *HandSizeError when tokens is nil or has the wrong length.
// Duplicated cards inside the hand are not rejected.
func NewHand(tokens []string) (*Hand, error) {
	if err := checkHandSize(tokens); err != nil {
		return nil, err
	}

	h := &Hand{groups: make(map[int][]Card, HandSize)}
	for i, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		h.cards[i] = c
		h.groups[c.rank] = append(h.groups[c.rank], c)
	}
	for rank := range h.groups {
		h.ranks = append(h.ranks, rank)
	}
	slices.Sort(h.ranks)
	h.category = DetermineCategory(h)
	return h, nil
}

func checkHandSize(tokens []string) error {
	if tokens == nil {
		return &HandSizeError{Absent: true}
	}
	if len(tokens) != HandSize {
		return &HandSizeError{Size: len(tokens)}
	}
	return nil
}

// Cards returns the cards in input order.
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards[:])
}

// Category returns the category computed at construction.
func (h *Hand) Category() Category {
	return h.category
}

// UnrecognizedCards returns the cards whose rank token was not recognized.
func (h *Hand) UnrecognizedCards() []Card {
	return slices.DeleteFunc(h.Cards(), Card.Valid)
}

func (h *Hand) String() string {
	s := ""
	for i, c := range h.cards {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}

// groupsOfSize returns the rank groups holding exactly n cards, highest rank first.
func (h *Hand) groupsOfSize(n int) [][]Card {
	var out [][]Card
	for i := len(h.ranks) - 1; i >= 0; i-- {
		if g := h.groups[h.ranks[i]]; len(g) == n {
			out = append(out, slices.Clone(g))
		}
	}
	return out
}

// HasPair reports at least one group of exactly two cards.
func (h *Hand) HasPair() bool {
	return len(h.groupsOfSize(2)) > 0
}

// HasTwoPairs reports two groups of exactly two cards.
func (h *Hand) HasTwoPairs() bool {
	return len(h.groupsOfSize(2)) == 2
}

// HasThreeOfAKind reports a group of exactly three cards.
func (h *Hand) HasThreeOfAKind() bool {
	return len(h.groupsOfSize(3)) == 1
}

// HasFourOfAKind reports a group of four cards.
func (h *Hand) HasFourOfAKind() bool {
	return len(h.groupsOfSize(4)) == 1
}

// HasFullHouse reports a three-card group plus a separate pair.
func (h *Hand) HasFullHouse() bool {
	return h.HasThreeOfAKind() && h.HasPair()
}

// HasStraight reports five distinct, consecutive ranks. The ace is always high,
// so A-2-3-4-5 is not a straight.
func (h *Hand) HasStraight() bool {
	if len(h.ranks) != HandSize {
		return false
	}
	for i := 1; i < len(h.ranks); i++ {
		if h.ranks[i] != h.ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// HasFlush reports five cards of the same suit.
func (h *Hand) HasFlush() bool {
	for _, c := range h.cards[1:] {
		if c.suit != h.cards[0].suit {
			return false
		}
	}
	return true
}

// HasStraightFlush reports a straight whose cards share a suit.
func (h *Hand) HasStraightFlush() bool {
	return h.HasFlush() && h.HasStraight()
}

// CardsForExpectedSize returns the highest-ranked group of exactly n cards, or
// nil when there is none.
func (h *Hand) CardsForExpectedSize(n int) []Card {
	groups := h.groupsOfSize(n)
	if len(groups) == 0 {
		return nil
	}
	return groups[0]
}

// PairCards returns the highest pair, or nil.
func (h *Hand) PairCards() []Card {
	return h.CardsForExpectedSize(2)
}

// ThreeOfAKindCards returns the three-card group, or nil.
func (h *Hand) ThreeOfAKindCards() []Card {
	return h.CardsForExpectedSize(3)
}

// FourOfAKindCards returns the four-card group, or nil.
func (h *Hand) FourOfAKindCards() []Card {
	return h.CardsForExpectedSize(4)
}

// FullHouseCards returns the three-card half of a full house only. The pair half
// is available through PairCards.
func (h *Hand) FullHouseCards() []Card {
	if !h.HasFullHouse() {
		return nil
	}
	return h.ThreeOfAKindCards()
}

// TwoPairsCards returns the pair groups sorted by rank, higher pair first.
func (h *Hand) TwoPairsCards() [][]Card {
	return h.groupsOfSize(2)
}

// HighCard returns the highest-ranked card. Among equal ranks the first in
// input order wins.
func (h *Hand) HighCard() Card {
	c, _ := h.NextHighestCard()
	return c
}

// NextHighestCard returns the highest-ranked card left after removing each
// excluded card once. It reports false when nothing is left.
func (h *Hand) NextHighestCard(excluded ...Card) (Card, bool) {
	rest := h.Cards()
	for _, ex := range excluded {
		if i := slices.Index(rest, ex); i >= 0 {
			rest = slices.Delete(rest, i, i+1)
		}
	}
	if len(rest) == 0 {
		return Card{}, false
	}
	best := rest[0]
	for _, c := range rest[1:] {
		if c.Compare(best) > 0 {
			best = c
		}
	}
	return best, true
}

// without returns the hand's cards minus the given ones, in input order.
func (h *Hand) without(cards []Card) []Card {
	rest := h.Cards()
	for _, c := range cards {
		if i := slices.Index(rest, c); i >= 0 {
			rest = slices.Delete(rest, i, i+1)
		}
	}
	return rest
}
