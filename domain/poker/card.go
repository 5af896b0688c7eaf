package poker

import (
	"fmt"
	"strings"
)

// Suit of a playing card. Suits carry no ranking weight; they only matter for
// flush detection and display.
type Suit uint8

// Card suit constants (0-3)
const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A (always high)
)

// InvalidRank is the rank given to a card built from an unrecognized rank token.
// It sorts below every real rank.
const InvalidRank = -1

var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"T": 10, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

var rankNames = map[int]string{
	2: "TWO", 3: "THREE", 4: "FOUR", 5: "FIVE", 6: "SIX", 7: "SEVEN", 8: "EIGHT",
	9: "NINE", 10: "TEN", Jack: "JACK", Queen: "QUEEN", King: "KING", Ace: "ACE",
}

// ParseSuit maps a suit letter (C, D, H, S, any case) to its Suit.
func ParseSuit(token string) (Suit, error) {
	switch strings.ToUpper(token) {
	case "C":
		return Club, nil
	case "D":
		return Diamond, nil
	case "H":
		return Heart, nil
	case "S":
		return Spade, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedSuit, token)
}

// Letter returns the single-letter token of the suit.
func (s Suit) Letter() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	}
	return "?"
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "CLUBS"
	case Diamond:
		return "DIAMONDS"
	case Heart:
		return "HEARTS"
	case Spade:
		return "SPADES"
	}
	return "UNKNOWN"
}

// Card represents a playing card with rank and suit.
// Cards are values; they are never modified after construction.
type Card struct {
	rank      int    // 2-14, or InvalidRank
	rankToken string // upper-cased rank token as supplied
	suit      Suit
}

// NewCard creates a Card from a rank token (2-9, T, J, Q, K, A) and a suit token
// (C, D, H, S). Both are case-insensitive.
//
// An unrecognized rank token does not fail: the card gets InvalidRank and keeps
// the raw token for display. An unrecognized suit token returns ErrUnrecognizedSuit.
func NewCard(rank string, suit string) (Card, error) {
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	token := strings.ToUpper(rank)
	value, ok := rankValues[token]
	if !ok {
		value = InvalidRank
	}
	return Card{rank: value, rankToken: token, suit: s}, nil
}

// ParseCard parses a two-character token such as "AS" or "tc".
func ParseCard(token string) (Card, error) {
	if len(token) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, token)
	}
	return NewCard(token[:1], token[1:])
}

// Rank returns the numeric rank (2-14), or InvalidRank.
func (c Card) Rank() int {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether the card has a recognized rank.
func (c Card) Valid() bool {
	return c.rank != InvalidRank
}

// Name returns the display name of the rank (ACE, KING, ..., TWO). Cards with an
// unrecognized rank return their raw rank token.
func (c Card) Name() string {
	if name, ok := rankNames[c.rank]; ok {
		return name
	}
	return c.rankToken
}

// String returns the normalized two-character token, e.g. "AS".
func (c Card) String() string {
	return c.rankToken + c.suit.Letter()
}

// Compare orders cards by rank only: negative if c ranks below o, zero on equal
// rank, positive otherwise.
func (c Card) Compare(o Card) int {
	switch {
	case c.rank < o.rank:
		return -1
	case c.rank > o.rank:
		return 1
	}
	return 0
}

func sumRanks(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.rank
	}
	return total
}
