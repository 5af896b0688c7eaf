package poker

import (
	"fmt"
	"io"
	"log/slog"
)

// Side identifies one of the two players at the table.
type Side int

const (
	NoSide Side = iota
	Black
	White
)

func (s Side) String() string {
	switch s {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	}
	return "NONE"
}

// Verdict is the result of a tie-break between two hands of the same category.
// A zero Verdict is a tie.
type Verdict struct {
	Winner Side
	Reason string
}

// Tie reports whether neither hand won.
func (v Verdict) Tie() bool {
	return v.Winner == NoSide
}

// Comparator breaks ties between hands that share a category.
// The zero value is ready to use and logs nothing.
type Comparator struct {
	Logger *slog.Logger
	// FullHousePairs compares the pair of two full houses when their triples
	// have the same value.
	FullHousePairs bool
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c Comparator) logger() *slog.Logger {
	if c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

// Compare applies the tie-break rules of the shared category of black and
// white. It fails with ErrCategoryMismatch when the categories differ.
func (c Comparator) Compare(black, white *Hand) (Verdict, error) {
	if black.Category() != white.Category() {
		return Verdict{}, fmt.Errorf("%w: %s and %s", ErrCategoryMismatch, black.Category(), white.Category())
	}

	cat := black.Category()
	switch cat {
	case StraightFlush, Flush, Straight, HighCard:
		return c.walk(cat, black, white), nil
	case FourOfAKind:
		v, _ := c.sums(cat, "value of", sumRanks(black.FourOfAKindCards()), sumRanks(white.FourOfAKindCards()))
		return v, nil
	case FullHouse:
		v, decided := c.sums(cat, "value of", sumRanks(black.FullHouseCards()), sumRanks(white.FullHouseCards()))
		if decided || !c.FullHousePairs {
			return v, nil
		}
		v, _ = c.sums(cat, "pair value of", sumRanks(black.PairCards()), sumRanks(white.PairCards()))
		return v, nil
	case ThreeOfAKind:
		v, _ := c.sums(cat, "value of", sumRanks(black.ThreeOfAKindCards()), sumRanks(white.ThreeOfAKindCards()))
		return v, nil
	case Pair:
		return c.pair(black, white), nil
	case TwoPairs:
		return c.twoPairs(black, white), nil
	}
	return Verdict{}, fmt.Errorf("unknown category %d", int(cat))
}

// walk compares the cards of both hands from the highest down until one differs.
func (c Comparator) walk(cat Category, black, white *Hand) Verdict {
	var blackSeen, whiteSeen []Card
	for n := 0; n < HandSize; n++ {
		b, _ := black.NextHighestCard(blackSeen...)
		w, _ := white.NextHighestCard(whiteSeen...)
		c.logger().Debug("comparing high cards",
			slog.String("category", cat.String()),
			slog.String("black", b.String()),
			slog.String("white", w.String()))
		switch b.Compare(w) {
		case 1:
			return Verdict{Winner: Black, Reason: highCardReason(b)}
		case -1:
			return Verdict{Winner: White, Reason: highCardReason(w)}
		}
		blackSeen = append(blackSeen, b)
		whiteSeen = append(whiteSeen, w)
	}
	return Verdict{}
}

func highCardReason(c Card) string {
	return fmt.Sprintf("HIGH CARD: [%s]", c.Name())
}

// sums compares two summed values. The reason always names the winner's value
// first. decided is false on equal values.
func (c Comparator) sums(cat Category, label string, black, white int) (v Verdict, decided bool) {
	c.logger().Debug("comparing sums",
		slog.String("category", cat.String()),
		slog.String("step", label),
		slog.Int("black", black),
		slog.Int("white", white))
	switch {
	case black > white:
		v.Winner = Black
	case white > black:
		v.Winner = White
		black, white = white, black
	default:
		return Verdict{}, false
	}
	v.Reason = fmt.Sprintf("[%s] %s [%d] over [%s] %s [%d]", cat, label, black, cat, label, white)
	return v, true
}

// pair compares the pair values, then the sum of the three remaining cards.
func (c Comparator) pair(black, white *Hand) Verdict {
	bp, wp := black.PairCards(), white.PairCards()
	if v, decided := c.sums(Pair, "value of", sumRanks(bp), sumRanks(wp)); decided {
		return v
	}
	v, _ := c.sums(Pair, "kicker value of", sumRanks(black.without(bp)), sumRanks(white.without(wp)))
	return v
}

// twoPairs compares the higher pairs, then the lower pairs, then the kicker.
func (c Comparator) twoPairs(black, white *Hand) Verdict {
	bp, wp := black.TwoPairsCards(), white.TwoPairsCards()
	if v, decided := c.sums(TwoPairs, "high pair value of", sumRanks(bp[0]), sumRanks(wp[0])); decided {
		return v
	}
	if v, decided := c.sums(TwoPairs, "low pair value of", sumRanks(bp[1]), sumRanks(wp[1])); decided {
		return v
	}

	bk := black.without(append(bp[0], bp[1]...))[0]
	wk := white.without(append(wp[0], wp[1]...))[0]
	c.logger().Debug("comparing kickers",
		slog.String("category", TwoPairs.String()),
		slog.String("black", bk.String()),
		slog.String("white", wk.String()))
	switch bk.Compare(wk) {
	case 1:
		return Verdict{Winner: Black, Reason: kickerReason(bk, wk)}
	case -1:
		return Verdict{Winner: White, Reason: kickerReason(wk, bk)}
	}
	return Verdict{}
}

func kickerReason(winner, loser Card) string {
	return fmt.Sprintf("[%s] kicker [%s] over [%s] kicker [%s]", TwoPairs, winner.Name(), TwoPairs, loser.Name())
}
