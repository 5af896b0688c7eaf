// Package poker implements the referee of a five-card showdown between a black
// and a white hand: card parsing, hand classification, tie-breaking and
// adjudication.
//
// # Core Types
//
// Card: a playing card with a rank (2-14, ace high) and a suit. Unrecognized
// rank tokens are kept with InvalidRank.
//
// Hand: five cards grouped by rank at construction, with the Category cached.
//
// Comparator: the tie-break rules for two hands of the same category.
//
// Referee: classifies both hands and produces an immutable Outcome.
//
// # Tie-break Rules
//
// Straight flush, flush, straight and high card hands are compared card by card
// from the highest down. Four of a kind, full house and three of a kind compare
// the summed value of their defining group. A pair compares the pair value, then
// the summed value of the three other cards. Two pairs compare the higher pair,
// the lower pair, then the kicker. Equal values everywhere make a tie.
//
// These rules differ from conventional poker in places; StandardWinner ranks
// hands the conventional way so the two can be compared.
//
// # Batches
//
// Referee.PlayAll adjudicates many independent matches concurrently.
package poker
