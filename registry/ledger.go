package registry

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/boltdb/bolt"
)

var balanceBucket = []byte("balances")

// ErrInsufficientFunds is the failure signal of the value-transfer
// primitive: the payer does not hold the amount being moved.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Settlement moves value between accounts. Buy depends only on its
// success or failure; funds custody is the settlement's problem.
type Settlement interface {
	Transfer(from, to string, amount uint64) error
}

// Ledger is a bolt-backed Settlement holding plain account balances. It
// must live in its own store, not the registry's, so that a transfer can
// run while a registry write transaction is open.
type Ledger struct {
	db *bolt.DB
}

func NewLedger(db *bolt.DB) (*Ledger, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(balanceBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger: %v", err)
	}
	return &Ledger{db: db}, nil
}

// Deposit credits an account.
func (l *Ledger) Deposit(account string, amount uint64) error {
	if account == "" {
		return fmt.Errorf("ledger: empty account")
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(balanceBucket)
		return b.Put([]byte(account), itob(btou(b.Get([]byte(account)))+amount))
	})
}

// Balance returns the current balance of an account; unknown accounts
// hold zero.
func (l *Ledger) Balance(account string) (uint64, error) {
	var balance uint64
	err := l.db.View(func(tx *bolt.Tx) error {
		balance = btou(tx.Bucket(balanceBucket).Get([]byte(account)))
		return nil
	})
	return balance, err
}

// Transfer moves amount from one account to another in a single commit.
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	if from == "" || to == "" {
		return fmt.Errorf("ledger: empty account")
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(balanceBucket)
		src := btou(b.Get([]byte(from)))
		if src < amount {
			return ErrInsufficientFunds
		}
		if err := b.Put([]byte(from), itob(src-amount)); err != nil {
			return err
		}
		return b.Put([]byte(to), itob(btou(b.Get([]byte(to)))+amount))
	})
}

func itob(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func btou(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}
