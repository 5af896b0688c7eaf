package poker

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandSize  = errors.New("invalid hand size")
	ErrDuplicateCard    = errors.New("card exists in both hands")
	ErrUnrecognizedRank = errors.New("unrecognized rank")
	ErrUnrecognizedSuit = errors.New("unrecognized suit")
	ErrMalformedCard    = errors.New("malformed card token")
	ErrCategoryMismatch = errors.New("hands do not share a category")
)

// HandSizeError is returned when a hand is absent or does not hold exactly HandSize cards.
type HandSizeError struct {
	Size   int
	Absent bool
}

func (e *HandSizeError) Error() string {
	if e.Absent {
		return "unable to parse absent hand"
	}
	return fmt.Sprintf("poker hand cannot be less than or greater than %d cards, size of hand parsed: [%d]", HandSize, e.Size)
}

func (e *HandSizeError) Is(target error) bool { return target == ErrInvalidHandSize }

// DuplicateCardError identifies a card token supplied in both hands.
type DuplicateCardError struct {
	Token string
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("card [%s] exists in both hands", e.Token)
}

func (e *DuplicateCardError) Is(target error) bool { return target == ErrDuplicateCard }

// UnrecognizedRankError is returned in strict mode for a card whose rank token is unknown.
type UnrecognizedRankError struct {
	Token string
}

func (e *UnrecognizedRankError) Error() string {
	return fmt.Sprintf("card [%s] has an unrecognized rank", e.Token)
}

func (e *UnrecognizedRankError) Is(target error) bool { return target == ErrUnrecognizedRank }
