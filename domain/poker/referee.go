package poker

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Outcome is the adjudication of one match.
type Outcome struct {
	Winner        Side
	Reason        string
	BlackCategory Category
	WhiteCategory Category

	// Standard is the winner under conventional poker rules. It is only
	// meaningful when Checked is true.
	Standard Side
	Checked  bool
}

// IsTie reports whether neither hand won.
func (o Outcome) IsTie() bool {
	return o.Winner == NoSide
}

// Divergent reports whether conventional poker rules would have picked a
// different winner.
func (o Outcome) Divergent() bool {
	return o.Checked && o.Standard != o.Winner
}

// String renders the outcome as PLAYER [BLACK] WINS! REASON = ..., or TIE.
func (o Outcome) String() string {
	if o.IsTie() {
		return "TIE"
	}
	return fmt.Sprintf("PLAYER [%s] WINS! REASON = %s", o.Winner, o.Reason)
}

// Referee adjudicates matches between a black and a white hand.
// A Referee holds configuration only and is safe for concurrent use. The zero
// value is usable: it logs nowhere and PlayAll runs one worker per CPU.
type Referee struct {
	logger         *slog.Logger
	strictRanks    bool
	fullHousePairs bool
	standardCheck  bool
	workers        int
}

// RefereeOption configures a Referee built by NewReferee.
type RefereeOption func(Referee) Referee

// NewReferee returns a Referee that discards its logs and plays batches on
// runtime.NumCPU() workers, adjusted by opts.
func NewReferee(opts ...RefereeOption) Referee {
	r := Referee{
		logger:  discardLogger,
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		r = opt(r)
	}
	return r
}

// WithLogger sends the referee's logs to logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) RefereeOption {
	return func(r Referee) Referee {
		if logger != nil {
			r.logger = logger
		}
		return r
	}
}

// WithStrictRanks rejects cards whose rank token is not recognized instead of
// playing them with InvalidRank.
func WithStrictRanks() RefereeOption {
	return func(r Referee) Referee {
		r.strictRanks = true
		return r
	}
}

// WithFullHousePairTieBreak compares the pairs of two full houses whose
// triples have the same value.
func WithFullHousePairTieBreak() RefereeOption {
	return func(r Referee) Referee {
		r.fullHousePairs = true
		return r
	}
}

// WithStandardCheck ranks every match again under conventional poker rules and
// records the result in Outcome.Standard.
func WithStandardCheck() RefereeOption {
	return func(r Referee) Referee {
		r.standardCheck = true
		return r
	}
}

// WithWorkers bounds the number of matches PlayAll adjudicates at once.
func WithWorkers(n int) RefereeOption {
	return func(r Referee) Referee {
		if n > 0 {
			r.workers = n
		}
		return r
	}
}

// Play adjudicates a match with a default Referee and returns the rendered result.
func Play(black, white []string) (string, error) {
	o, err := NewReferee().Play(black, white)
	if err != nil {
		return "", err
	}
	return o.String(), nil
}

// ValidateDisjoint fails with a *DuplicateCardError when a card token, compared
// case-insensitively, appears in both hands.
func ValidateDisjoint(black, white []string) error {
	seen := make(map[string]struct{}, len(white))
	for _, token := range white {
		seen[strings.ToUpper(token)] = struct{}{}
	}
	for _, token := range black {
		if _, ok := seen[strings.ToUpper(token)]; ok {
			return &DuplicateCardError{Token: strings.ToUpper(token)}
		}
	}
	return nil
}

// Play checks the size of both hands, then that no card is shared, then builds
// both hands and adjudicates them.
func (r Referee) Play(black, white []string) (Outcome, error) {
	if err := checkHandSize(black); err != nil {
		return Outcome{}, fmt.Errorf("black hand: %w", err)
	}
	if err := checkHandSize(white); err != nil {
		return Outcome{}, fmt.Errorf("white hand: %w", err)
	}
	if err := ValidateDisjoint(black, white); err != nil {
		return Outcome{}, err
	}
	bh, err := r.hand(black)
	if err != nil {
		return Outcome{}, fmt.Errorf("black hand: %w", err)
	}
	wh, err := r.hand(white)
	if err != nil {
		return Outcome{}, fmt.Errorf("white hand: %w", err)
	}
	return r.Judge(bh, wh)
}

func (r Referee) log() *slog.Logger {
	if r.logger == nil {
		return discardLogger
	}
	return r.logger
}

func (r Referee) hand(tokens []string) (*Hand, error) {
	h, err := NewHand(tokens)
	if err != nil {
		return nil, err
	}
	if bad := h.UnrecognizedCards(); r.strictRanks && len(bad) > 0 {
		return nil, &UnrecognizedRankError{Token: bad[0].String()}
	}
	return h, nil
}

// Judge adjudicates two hands that are already built. A higher category wins
// outright, equal categories go to the tie-break rules.
func (r Referee) Judge(black, white *Hand) (Outcome, error) {
	o := Outcome{BlackCategory: black.Category(), WhiteCategory: white.Category()}
	r.log().Debug("hands classified",
		slog.String("black", black.String()),
		slog.String("blackCategory", o.BlackCategory.String()),
		slog.String("white", white.String()),
		slog.String("whiteCategory", o.WhiteCategory.String()))

	switch {
	case o.BlackCategory > o.WhiteCategory:
		o.Winner = Black
		o.Reason = fmt.Sprintf("[%s] OVER [%s]", o.BlackCategory, o.WhiteCategory)
	case o.WhiteCategory > o.BlackCategory:
		o.Winner = White
		o.Reason = fmt.Sprintf("[%s] OVER [%s]", o.WhiteCategory, o.BlackCategory)
	default:
		c := Comparator{Logger: r.log(), FullHousePairs: r.fullHousePairs}
		v, err := c.Compare(black, white)
		if err != nil {
			return Outcome{}, err
		}
		o.Winner, o.Reason = v.Winner, v.Reason
	}

	if r.standardCheck {
		r.crossCheck(&o, black, white)
	}
	r.log().Info("match adjudicated", slog.String("winner", o.Winner.String()), slog.String("reason", o.Reason))
	return o, nil
}

func (r Referee) crossCheck(o *Outcome, black, white *Hand) {
	standard, err := StandardWinner(black, white)
	if err != nil {
		r.log().Warn("standard rules check skipped", slog.String("error", err.Error()))
		return
	}
	o.Standard, o.Checked = standard, true
	if o.Divergent() {
		r.log().Warn("standard poker rules disagree",
			slog.String("winner", o.Winner.String()),
			slog.String("standard", standard.String()))
	}
}
