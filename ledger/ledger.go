package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Ledger is an append-only, hash-chained log of adjudicated matches.
type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	signer *Signer
}

// NewLedger creates a ledger holding only the unsigned genesis block. Blocks
// appended later are signed by signer, or by a freshly generated key when
// signer is nil.
func NewLedger(signer *Signer) *Ledger {
	if signer == nil {
		signer = NewSigner()
	}
	l := &Ledger{
		blocks: make([]Block, 0),
		signer: signer,
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Record:    Record{MatchID: "genesis"},
		Metadata:  Metadata{Signer: signer.Public().String()},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)

	return l
}

// Append records a match in a new signed block. The extra parameter can
// optionally carry additional metadata.
func (l *Ledger) Append(record Record, extra ...map[string]string) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Record:    record,
		Metadata: Metadata{
			Signer: l.signer.Public().String(),
			Extra:  extraMsg,
		},
	}
	newBlock.Hash = calculateHash(newBlock)

	sig, err := l.signer.Sign([]byte(newBlock.Hash))
	if err != nil {
		return Block{}, err
	}
	newBlock.Signature = sig

	if err := l.validateBlock(newBlock, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}

	l.blocks = append(l.blocks, newBlock)
	return newBlock, nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, fmt.Errorf("ledger is empty")
	}
	return l.blocks[len(l.blocks)-1], nil
}

// ByIndex returns the block at index, genesis being 0.
func (l *Ledger) ByIndex(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks)
}

// Blocks returns a copy of the chain.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Block(nil), l.blocks...)
}

// Verify validates the genesis block and checks every following block's index
// continuity, previous hash linkage, hash and signature.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("empty ledger")
	}
	if l.blocks[0].PrevHash != "0" || l.blocks[0].Hash != calculateHash(l.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(l.blocks); i++ {
		if err := l.validateBlock(l.blocks[i], l.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

func (l *Ledger) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}
	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}
	return VerifySignature(l.signer.Public(), []byte(current.Hash), current.Signature)
}

// calculateHash computes the SHA256 hash of a block's index, timestamp,
// previous hash, record and metadata. The signature is not covered.
func calculateHash(block Block) string {
	recordBytes, _ := json.Marshal(block.Record)
	metadataBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(recordBytes),
		string(metadataBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
