package store

import (
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	apperrors "github.com/shelfmark/backend/internal/errors"
	"github.com/shelfmark/backend/internal/models"
)

var (
	kvBucket = []byte("shelfmark")
	// kvKey is the fixed key the whole collection lives under, the local
	// key-value analogue of the browser storage key.
	kvKey = []byte("book-management-app-books")
)

// KVBackend persists the collection under one fixed key in a local
// key-value store. The value is a JSON array of records with no wrapping
// object, serialized and deserialized whole on every access.
type KVBackend struct {
	db *bolt.DB
}

// NewKVBackend opens (or creates) the key-value store at path.
func NewKVBackend(path string) (*KVBackend, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable,
			"cannot open key-value store", err)
	}
	return &KVBackend{db: db}, nil
}

// Load reads the collection value. A missing bucket or key is not an error.
func (k *KVBackend) Load() ([]models.Book, bool, error) {
	var raw []byte
	err := k.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(kvBucket)
		if bucket == nil {
			return nil
		}
		if value := bucket.Get(kvKey); value != nil {
			raw = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrStorageUnavailable,
			"cannot read key-value store", err)
	}
	if raw == nil {
		return nil, false, nil
	}

	var books []models.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrMalformedData,
			"persisted collection is not a valid book array", err)
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, true, nil
}

// Save overwrites the collection value.
func (k *KVBackend) Save(books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "encode collection", err)
	}

	err = k.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(kvBucket)
		if err != nil {
			return err
		}
		return bucket.Put(kvKey, data)
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable,
			"cannot write key-value store", err)
	}
	return nil
}

// Close closes the underlying store file.
func (k *KVBackend) Close() error {
	return k.db.Close()
}
