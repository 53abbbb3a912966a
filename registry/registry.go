// Package registry holds the asset-tokenization core: the canonical asset
// records, their mint and trade lifecycle, the trusted-member ledger, and
// the settlement primitive that moves payment when a sale completes.
//
// Every mutating operation runs as a single bolt write transaction, so an
// operation's effects (status change, counter increment, payment transfer)
// commit together or not at all, and concurrent mutations are serialized
// by the store.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
)

var (
	assetBucket = []byte("assets")
	tokenBucket = []byte("tokens")
	metaBucket  = []byte("meta")

	nextTokenKey = []byte("next-token-id")
)

// Config carries the constructor parameters supplied by the deployment
// tooling. All fields are required; none are validated beyond that.
type Config struct {
	Name     string // display name, e.g. "CasimirX"
	Symbol   string // ticker symbol, e.g. "CRX"
	BaseURI  string // content locator prefix, e.g. an IPFS gateway
	Payout   string // trusted payout address
	Identity string // this registry instance's identity in the access registry
}

// record is the stored form of one tokenized asset.
type record struct {
	BusinessKey uint64 `json:"business_key"`
	TokenID     uint64 `json:"token_id"`
	Minted      bool   `json:"minted"`
	ContentRef  string `json:"content_ref"`
	Owner       string `json:"owner"`
	Price       uint64 `json:"price"`
	Status      Status `json:"status"`
}

// AssetInfo is the read-only aggregate view of a record.
type AssetInfo struct {
	ContentRef string `json:"content_ref"`
	Owner      string `json:"owner"`
	Price      uint64 `json:"price"`
	Status     Status `json:"status"`
}

// AssetRegistry owns the asset records, the business-key index, and the
// token-id sequence, and exposes the marketplace operations over them.
type AssetRegistry struct {
	db     *bolt.DB
	access *AccessRegistry
	pay    Settlement
	cfg    Config
}

// NewAssetRegistry opens the registry on db. The access registry must be
// backed by the same db so that privileged operations can consult it
// within their own write transaction.
func NewAssetRegistry(db *bolt.DB, access *AccessRegistry, pay Settlement, cfg Config) (*AssetRegistry, error) {
	if cfg.Name == "" || cfg.Symbol == "" || cfg.BaseURI == "" || cfg.Payout == "" || cfg.Identity == "" {
		return nil, fmt.Errorf("registry: incomplete configuration")
	}
	if access == nil || pay == nil {
		return nil, fmt.Errorf("registry: missing access registry or settlement")
	}
	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{assetBucket, tokenBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("registry: %v", err)
	}
	return &AssetRegistry{db: db, access: access, pay: pay, cfg: cfg}, nil
}

// Describe returns the constructor configuration for the info surface.
func (r *AssetRegistry) Describe() Config {
	return r.cfg
}

// AddAsset registers a new record under businessKey with the caller as
// prospective owner. The price is informational until the record is
// listed.
func (r *AssetRegistry) AddAsset(caller string, priceHint uint64, contentRef string, businessKey uint64) error {
	if caller == "" {
		return fmt.Errorf("registry: empty caller")
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		assets := tx.Bucket(assetBucket)
		if assets.Get(itob(businessKey)) != nil {
			return ErrDuplicateKey
		}
		rec := record{
			BusinessKey: businessKey,
			ContentRef:  contentRef,
			Owner:       caller,
			Price:       priceHint,
			Status:      StatusCreated,
		}
		return putRecord(assets, &rec)
	})
}

// Mint assigns the next token id to the record under businessKey and makes
// owner its holder. The token-id counter only ever moves forward; ids are
// never reused.
func (r *AssetRegistry) Mint(businessKey uint64, owner string) (uint64, error) {
	if owner == "" {
		return 0, fmt.Errorf("registry: empty owner")
	}
	var tokenID uint64
	err := r.db.Update(func(tx *bolt.Tx) error {
		assets := tx.Bucket(assetBucket)
		rec, err := getRecord(assets, businessKey)
		if err != nil {
			return err
		}
		if !canTransition(rec.Status, StatusMinted) {
			return ErrInvalidState
		}

		meta := tx.Bucket(metaBucket)
		tokenID = btou(meta.Get(nextTokenKey))
		if err := meta.Put(nextTokenKey, itob(tokenID+1)); err != nil {
			return err
		}
		if err := tx.Bucket(tokenBucket).Put(itob(tokenID), itob(businessKey)); err != nil {
			return err
		}

		rec.TokenID = tokenID
		rec.Minted = true
		rec.Owner = owner
		rec.Status = StatusMinted
		return putRecord(assets, rec)
	})
	return tokenID, err
}

// TokenID looks up the token assigned to businessKey.
func (r *AssetRegistry) TokenID(businessKey uint64) (uint64, error) {
	var tokenID uint64
	err := r.db.View(func(tx *bolt.Tx) error {
		rec, err := getRecord(tx.Bucket(assetBucket), businessKey)
		if err != nil {
			return err
		}
		if !rec.Minted {
			return ErrNotMinted
		}
		tokenID = rec.TokenID
		return nil
	})
	return tokenID, err
}

// OwnerOf returns the current holder of tokenID.
func (r *AssetRegistry) OwnerOf(tokenID uint64) (string, error) {
	var owner string
	err := r.db.View(func(tx *bolt.Tx) error {
		rec, err := getByToken(tx, tokenID)
		if err != nil {
			return err
		}
		owner = rec.Owner
		return nil
	})
	return owner, err
}

// ContentURI composes the base locator with the record's content
// reference. The result is not checked for reachability.
func (r *AssetRegistry) ContentURI(tokenID uint64) (string, error) {
	var uri string
	err := r.db.View(func(tx *bolt.Tx) error {
		rec, err := getByToken(tx, tokenID)
		if err != nil {
			return err
		}
		uri = r.cfg.BaseURI + rec.ContentRef
		return nil
	})
	return uri, err
}

// AssetInfo returns the aggregate view of the record under businessKey.
func (r *AssetRegistry) AssetInfo(businessKey uint64) (AssetInfo, error) {
	var info AssetInfo
	err := r.db.View(func(tx *bolt.Tx) error {
		rec, err := getRecord(tx.Bucket(assetBucket), businessKey)
		if err != nil {
			return err
		}
		info = AssetInfo{
			ContentRef: rec.ContentRef,
			Owner:      rec.Owner,
			Price:      rec.Price,
			Status:     rec.Status,
		}
		return nil
	})
	return info, err
}

// PutToSell lists tokenID at price. Only the current owner may list, and
// only while this registry instance is a registered member of the access
// registry. A record must already have an owner (Minted or Sold) to be
// listable.
func (r *AssetRegistry) PutToSell(caller string, tokenID, price uint64) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		rec, err := getByToken(tx, tokenID)
		if err != nil {
			return err
		}
		if !r.access.memberIn(tx, r.cfg.Identity) {
			return ErrUnauthorized
		}
		if caller != rec.Owner {
			return ErrUnauthorized
		}
		if price == 0 {
			return ErrInvalidPrice
		}
		if !canTransition(rec.Status, StatusForSale) {
			return ErrInvalidState
		}
		rec.Price = price
		rec.Status = StatusForSale
		return putRecord(tx.Bucket(assetBucket), rec)
	})
}

// Buy transfers tokenID to the caller against exact payment. The status
// flip out of ForSale is recorded before the settlement transfer is
// dispatched; both commit together, and a settlement failure rolls the
// whole operation back.
func (r *AssetRegistry) Buy(caller string, tokenID, payment uint64) error {
	if caller == "" {
		return fmt.Errorf("registry: empty caller")
	}
	return r.db.Update(func(tx *bolt.Tx) error {
		rec, err := getByToken(tx, tokenID)
		if err != nil {
			return err
		}
		if rec.Status != StatusForSale {
			return ErrInvalidState
		}
		if payment != rec.Price {
			return ErrPaymentMismatch
		}
		if caller == rec.Owner {
			return ErrSelfPurchase
		}

		seller := rec.Owner
		rec.Owner = caller
		rec.Status = StatusSold
		if err := putRecord(tx.Bucket(assetBucket), rec); err != nil {
			return err
		}
		return r.pay.Transfer(caller, seller, payment)
	})
}

func getRecord(assets *bolt.Bucket, businessKey uint64) (*record, error) {
	raw := assets.Get(itob(businessKey))
	if raw == nil {
		return nil, ErrNotFound
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("registry: corrupt record %d: %v", businessKey, err)
	}
	return &rec, nil
}

func getByToken(tx *bolt.Tx, tokenID uint64) (*record, error) {
	key := tx.Bucket(tokenBucket).Get(itob(tokenID))
	if key == nil {
		return nil, ErrNotFound
	}
	return getRecord(tx.Bucket(assetBucket), btou(key))
}

func putRecord(assets *bolt.Bucket, rec *record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return assets.Put(itob(rec.BusinessKey), raw)
}
