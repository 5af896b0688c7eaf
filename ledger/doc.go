// Package ledger implements an append-only ledger of adjudicated showdown
// matches.
//
// # Core Components
//
// Ledger: an in-memory log of match records with SHA256 hash chaining for
// tamper detection.
//
// Block: a single record with its cryptographic link to the previous block and
// a Schnorr signature over its hash.
//
// Signer: the Ed25519 key pair that signs every block after genesis.
//
// # Usage
//
// Create a ledger with a Signer, then append a Record for every adjudicated
// match. Verify can be called at any time to check that the chain and its
// signatures are intact.
package ledger
