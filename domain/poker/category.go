package poker

// Category is the rank ladder of five-card hands. The numeric order is the
// comparison order: a higher Category always beats a lower one.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryNames = [...]string{
	HighCard:      "HIGH_CARD",
	Pair:          "PAIR",
	TwoPairs:      "TWO_PAIRS",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
}

func (c Category) String() string {
	if c < HighCard || c > StraightFlush {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

// Categories lists every category from lowest to highest.
func Categories() []Category {
	return []Category{HighCard, Pair, TwoPairs, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush}
}

// highCardWalk reports whether ties in the category are broken by walking the
// cards from the highest down.
func (c Category) highCardWalk() bool {
	switch c {
	case StraightFlush, Flush, Straight, HighCard:
		return true
	}
	return false
}
