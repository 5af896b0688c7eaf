package poker

// DetermineCategory classifies a hand. The predicates are tried from the
// strongest category down and the first match wins, so a straight flush is
// never reported as a plain flush or straight.
func DetermineCategory(h *Hand) Category {
	switch {
	case h.HasStraightFlush():
		return StraightFlush
	case h.HasFourOfAKind():
		return FourOfAKind
	case h.HasFullHouse():
		return FullHouse
	case h.HasFlush():
		return Flush
	case h.HasStraight():
		return Straight
	case h.HasThreeOfAKind():
		return ThreeOfAKind
	case h.HasTwoPairs():
		return TwoPairs
	case h.HasPair():
		return Pair
	default:
		return HighCard
	}
}
