package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "github.com/boltdb/bolt"

	"invoicegen/internal/core"
)

var (
	bucketClients  = []byte("clients")
	bucketInvoices = []byte("invoices")
	bucketReceipts = []byte("receipts")
)

// BoltStore is a Repository backed by a single-file embedded BoltDB database.
// One bucket per entity, records stored as JSON keyed by ID.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the database file and ensures all entity buckets
// exist. The open blocks on the file lock for at most one second, so a second
// process pointed at the same file fails fast instead of hanging.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketClients, bucketInvoices, bucketReceipts} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close releases the database file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func listRecords[T any](db *bolt.DB, bucket []byte) ([]T, error) {
	// Non-nil so callers and encoders see [] instead of null.
	items := []T{}
	err := db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			var rec T
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode %s/%s: %w", bucket, k, err)
			}
			items = append(items, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func getRecord[T any](db *bolt.DB, bucket []byte, id string) (*T, error) {
	var rec T
	err := db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(id))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// putRecord writes the full snapshot unconditionally: last write wins.
func putRecord[T any](db *bolt.DB, bucket []byte, id string, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", bucket, id, err)
	}
	return db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
}

func deleteRecord(db *bolt.DB, bucket []byte, id string) error {
	return db.Update(func(tx *bolt.Tx) error {
		// Deleting an absent key is a no-op, which is the idempotent
		// behaviour we want for retried deletes.
		return tx.Bucket(bucket).Delete([]byte(id))
	})
}

func (s *BoltStore) ListClients() ([]core.Client, error) {
	return listRecords[core.Client](s.db, bucketClients)
}

func (s *BoltStore) GetClient(id string) (*core.Client, error) {
	return getRecord[core.Client](s.db, bucketClients, id)
}

func (s *BoltStore) PutClient(c core.Client) error {
	return putRecord(s.db, bucketClients, c.ID, c)
}

func (s *BoltStore) DeleteClient(id string) error {
	return deleteRecord(s.db, bucketClients, id)
}

func (s *BoltStore) ListInvoices() ([]core.Invoice, error) {
	return listRecords[core.Invoice](s.db, bucketInvoices)
}

func (s *BoltStore) GetInvoice(id string) (*core.Invoice, error) {
	return getRecord[core.Invoice](s.db, bucketInvoices, id)
}

func (s *BoltStore) PutInvoice(inv core.Invoice) error {
	return putRecord(s.db, bucketInvoices, inv.ID, inv)
}

func (s *BoltStore) DeleteInvoice(id string) error {
	return deleteRecord(s.db, bucketInvoices, id)
}

func (s *BoltStore) ListReceipts() ([]core.Receipt, error) {
	return listRecords[core.Receipt](s.db, bucketReceipts)
}

func (s *BoltStore) GetReceipt(id string) (*core.Receipt, error) {
	return getRecord[core.Receipt](s.db, bucketReceipts, id)
}

func (s *BoltStore) PutReceipt(rec core.Receipt) error {
	return putRecord(s.db, bucketReceipts, rec.ID, rec)
}

func (s *BoltStore) DeleteReceipt(id string) error {
	return deleteRecord(s.db, bucketReceipts, id)
}
