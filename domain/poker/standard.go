package poker

import (
	"fmt"
	"slices"

	"github.com/paulhankin/poker"
)

// StandardWinner ranks both hands under conventional poker rules, where kickers
// are compared card by card, a full house is decided by its pair when the
// triples match, and A-2-3-4-5 is a straight. It fails when a hand holds a card
// with an unrecognized rank or the same card twice, neither of which a real
// deck can deal.
func StandardWinner(black, white *Hand) (Side, error) {
	b, err := standardScore(black)
	if err != nil {
		return NoSide, fmt.Errorf("black hand: %w", err)
	}
	w, err := standardScore(white)
	if err != nil {
		return NoSide, fmt.Errorf("white hand: %w", err)
	}
	switch {
	case b > w:
		return Black, nil
	case w > b:
		return White, nil
	}
	return NoSide, nil
}

func standardScore(h *Hand) (int16, error) {
	var cards [HandSize]poker.Card
	for i, c := range h.cards {
		if slices.Contains(h.cards[:i], c) {
			return 0, fmt.Errorf("%w: card [%s] repeated in hand", ErrDuplicateCard, c)
		}
		pc, err := toStandardCard(c)
		if err != nil {
			return 0, err
		}
		cards[i] = pc
	}
	return poker.Eval5(&cards), nil
}

// toStandardCard converts a card to the evaluator's encoding, which counts the
// ace as rank 1.
func toStandardCard(c Card) (poker.Card, error) {
	var pc poker.Card
	if !c.Valid() {
		return pc, &UnrecognizedRankError{Token: c.String()}
	}
	rank := c.rank
	if rank == Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(rank))
	if err != nil {
		return pc, fmt.Errorf("card %s: %w", c, err)
	}
	return pc, nil
}
