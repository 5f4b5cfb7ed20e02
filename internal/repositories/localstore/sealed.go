package localstore

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/cryptox"
)

// Reserved keys holding the sealing parameters in clear.
const (
	sealPrefix      = "__seal."
	sealSaltKey     = sealPrefix + "salt"
	sealVerifierKey = sealPrefix + "verifier"
)

// SealedRepository encrypts every value with a key derived from a
// passphrase before handing it to the inner repository.
type SealedRepository struct {
	inner Repository
	key   []byte
}

// NewSealedRepository derives the key from passphrase and the stored salt.
// On first use it creates the salt and verifier and encrypts any values
// already stored in clear, all in one SetMany. A passphrase that does not
// match the stored verifier yields common.ErrorSealBroken.
func NewSealedRepository(ctx context.Context, inner Repository, passphrase string) (*SealedRepository, error) {
	salt, err := inner.Get(ctx, sealSaltKey)
	if err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		return initSealed(ctx, inner, passphrase)
	}

	verifier, err := inner.Get(ctx, sealVerifierKey)
	if err != nil {
		return nil, err
	}
	key := cryptox.DeriveMasterKey([]byte(passphrase), salt)
	if subtle.ConstantTimeCompare(cryptox.MakeVerifier(key), verifier) != 1 {
		common.WipeByteArray(key)
		return nil, common.ErrorSealBroken
	}
	return &SealedRepository{inner: inner, key: key}, nil
}

func initSealed(ctx context.Context, inner Repository, passphrase string) (*SealedRepository, error) {
	plain, err := inner.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read values to seal: %w", err)
	}

	salt := cryptox.NewSalt()
	key := cryptox.DeriveMasterKey([]byte(passphrase), salt)
	batch := map[string][]byte{
		sealSaltKey:     salt,
		sealVerifierKey: cryptox.MakeVerifier(key),
	}
	for k, v := range plain {
		if strings.HasPrefix(k, sealPrefix) {
			continue
		}
		sealed, err := cryptox.Seal(v, key)
		if err != nil {
			common.WipeByteArray(key)
			return nil, fmt.Errorf("failed to seal %s: %w", k, err)
		}
		batch[k] = sealed
	}

	if err := inner.SetMany(ctx, batch); err != nil {
		common.WipeByteArray(key)
		return nil, fmt.Errorf("failed to initialise sealed storage: %w", err)
	}
	return &SealedRepository{inner: inner, key: key}, nil
}

// IsSealed reports whether repo holds sealing parameters, i.e. whether its
// values can only be read through a SealedRepository.
func IsSealed(ctx context.Context, repo Repository) (bool, error) {
	salt, err := repo.Get(ctx, sealSaltKey)
	if err != nil {
		return false, err
	}
	return len(salt) > 0, nil
}

func (r *SealedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	return r.open(key, sealed)
}

func (r *SealedRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	sealed, err := cryptox.Seal(value, r.key)
	if err != nil {
		return fmt.Errorf("failed to seal %s: %w", key, err)
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *SealedRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	out := make(map[string][]byte, len(values))
	for k, v := range values {
		if err := checkKey(k); err != nil {
			return err
		}
		sealed, err := cryptox.Seal(v, r.key)
		if err != nil {
			return fmt.Errorf("failed to seal %s: %w", k, err)
		}
		out[k] = sealed
	}
	return r.inner.SetMany(ctx, out)
}

func (r *SealedRepository) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return r.inner.Delete(ctx, key)
}

// List decrypts every stored value; the sealing parameters are hidden.
func (r *SealedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, v := range all {
		if strings.HasPrefix(k, sealPrefix) {
			continue
		}
		plain, err := r.open(k, v)
		if err != nil {
			return nil, err
		}
		out[k] = plain
	}
	return out, nil
}

// Clear removes user data but keeps the salt and verifier, so the same
// passphrase keeps working.
func (r *SealedRepository) Clear(ctx context.Context) error {
	all, err := r.inner.List(ctx)
	if err != nil {
		return err
	}
	for k := range all {
		if strings.HasPrefix(k, sealPrefix) {
			continue
		}
		if err := r.inner.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// Close wipes the derived key.
func (r *SealedRepository) Close() {
	common.WipeByteArray(r.key)
}

func (r *SealedRepository) open(key string, sealed []byte) ([]byte, error) {
	plain, err := cryptox.Open(sealed, r.key)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, common.ErrorSealBroken)
	}
	return plain, nil
}

func checkKey(key string) error {
	if strings.HasPrefix(key, sealPrefix) {
		return fmt.Errorf("key %q is reserved: %w", key, common.ErrorInvalidInput)
	}
	return nil
}
