package registry

import (
	"fmt"

	"github.com/boltdb/bolt"
)

var memberBucket = []byte("members")

// AccessRegistry is a monotonically growing set of registry identities
// trusted to coordinate marketplace operations. There is no removal path.
type AccessRegistry struct {
	db *bolt.DB
}

func NewAccessRegistry(db *bolt.DB) (*AccessRegistry, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(memberBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("access registry: %v", err)
	}
	return &AccessRegistry{db: db}, nil
}

// RegisterMember adds an identity to the member set. Re-registering an
// existing member is a no-op, not an error.
func (a *AccessRegistry) RegisterMember(identity string) error {
	if identity == "" {
		return fmt.Errorf("access registry: empty identity")
	}
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(memberBucket).Put([]byte(identity), []byte{1})
	})
}

// IsMember reports whether an identity has been registered.
func (a *AccessRegistry) IsMember(identity string) (bool, error) {
	var member bool
	err := a.db.View(func(tx *bolt.Tx) error {
		member = a.memberIn(tx, identity)
		return nil
	})
	return member, err
}

// memberIn answers the membership question inside a transaction already
// open on the shared store, so AssetRegistry operations can consult it
// without starting a second transaction.
func (a *AccessRegistry) memberIn(tx *bolt.Tx, identity string) bool {
	b := tx.Bucket(memberBucket)
	return b != nil && b.Get([]byte(identity)) != nil
}
