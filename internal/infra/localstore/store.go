// Package localstore is the storefront's browser-localStorage analogue: a
// small keyed record store holding the guest cart and the session, backed by
// a blob bucket (files on disk in production, memory in tests).
package localstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"mycomart/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"mycomart/internal/domain/repository"
)

// Store wraps a blob bucket with whole-record JSON reads and writes. Each
// record is written in one call, which is what keeps the session's
// token-plus-user pair atomic.
type Store struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the record store. An empty storage path selects the in-memory
// bucket, used by tests and throwaway sessions.
func New(params Params) (*Store, error) {
	var bucket *blob.Bucket
	if params.Config.Storage.Path == "" {
		bucket = memblob.OpenBucket(nil)
		params.Logger.Info("Using in-memory local store")
	} else {
		var err error
		bucket, err = fileblob.OpenBucket(params.Config.Storage.Path, &fileblob.Options{
			CreateDir: true,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open local store bucket")
		}
		params.Logger.Info("Using file-backed local store", slog.String("path", params.Config.Storage.Path))
	}

	store := &Store{bucket: bucket, logger: params.Logger}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// NewMemory returns a store over an in-memory bucket, for tests.
func NewMemory(logger *slog.Logger) *Store {
	return &Store{bucket: memblob.OpenBucket(nil), logger: logger}
}

// Read unmarshals the record at key into v. Returns
// repository.ErrRecordNotFound when the key is absent.
func (s *Store) Read(ctx context.Context, key string, v any) error {
	data, err := s.bucket.ReadAll(ctx, key+".json")
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.ErrRecordNotFound
		}

		return errors.Wrapf(err, "failed to read record %s", key)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to decode record %s", key)
	}

	return nil
}

// Write marshals v and overwrites the record at key in a single call.
func (s *Store) Write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode record %s", key)
	}

	if err := s.bucket.WriteAll(ctx, key+".json", data, nil); err != nil {
		return errors.Wrapf(err, "failed to write record %s", key)
	}

	return nil
}

// Delete removes the record at key. Deleting an absent record is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key+".json")
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete record %s", key)
	}

	return nil
}

// Exists reports whether a record is present at key.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key+".json")
	if err != nil {
		return false, errors.Wrapf(err, "failed to stat record %s", key)
	}

	return ok, nil
}
