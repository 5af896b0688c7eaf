package ledger

import "github.com/luca-patrignani/showdown/domain/poker"

// Block is one adjudicated match in the ledger.
type Block struct {
	Index     int      `json:"index"`
	Timestamp int64    `json:"timestamp"`
	PrevHash  string   `json:"prev_hash"`
	Hash      string   `json:"hash"`
	Record    Record   `json:"record"`
	Signature []byte   `json:"signature,omitempty"` // Schnorr signature of Hash
	Metadata  Metadata `json:"metadata"`
}

// Record is the adjudication stored in a block.
type Record struct {
	MatchID       string   `json:"match_id"`
	Black         []string `json:"black"`
	White         []string `json:"white"`
	Winner        string   `json:"winner"`
	Reason        string   `json:"reason"`
	Result        string   `json:"result"`
	BlackCategory string   `json:"black_category"`
	WhiteCategory string   `json:"white_category"`
}

// Metadata names the block signer and carries free-form annotations such as the input source.
type Metadata struct {
	Signer string            `json:"signer"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// NewRecord captures the outcome of a match.
func NewRecord(matchID string, black, white []string, o poker.Outcome) Record {
	return Record{
		MatchID:       matchID,
		Black:         append([]string(nil), black...),
		White:         append([]string(nil), white...),
		Winner:        o.Winner.String(),
		Reason:        o.Reason,
		Result:        o.String(),
		BlackCategory: o.BlackCategory.String(),
		WhiteCategory: o.WhiteCategory.String(),
	}
}
