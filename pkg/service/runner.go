// Package service composes the codec, cache and ordering store into the
// operations shared by the CLI and the HTTP API.
//
// Codes cross this boundary as decimal strings: lengths up to
// [lehmer.MaxLength] are handled with int64 arithmetic and longer ones
// switch to the arbitrary-precision codec transparently.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lehmer/pkg/cache"
	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/lehmer"
	"github.com/matzehuels/lehmer/pkg/observability"
	"github.com/matzehuels/lehmer/pkg/store"
)

// Defaults applied by NewRunner.
const (
	DefaultCacheThreshold = 64
	DefaultTTL            = 24 * time.Hour
)

// Cache key types reported to observability hooks.
const (
	keyTypeEncode = "encode"
	keyTypeDecode = "decode"
)

// Result is the outcome of an encode or decode.
type Result struct {
	Length      int    `json:"length"`
	Code        string `json:"code"`
	Permutation []int  `json:"permutation,omitempty"`

	Big      bool `json:"-"` // arbitrary-precision path was used
	CacheHit bool `json:"-"`
}

// Runner executes codec and store operations with caching.
//
// Only arbitrary-precision results for lengths above CacheThreshold are
// cached; shorter ones are cheaper to recompute than to fetch. Cache failures are logged and
// never returned. A Runner is safe for concurrent use.
type Runner struct {
	Codec          *lehmer.Codec
	Cache          cache.Cache
	Keyer          cache.Keyer
	Store          store.Store
	Logger         *log.Logger
	CacheThreshold int
	TTL            time.Duration

	now func() time.Time
}

// NewRunner creates a runner around the default codec.
// A nil cache disables caching, a nil keyer uses DefaultKeyer, a nil store
// uses a MemoryStore and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, st store.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Codec:          lehmer.Default(),
		Cache:          c,
		Keyer:          keyer,
		Store:          st,
		Logger:         logger,
		CacheThreshold: DefaultCacheThreshold,
		TTL:            DefaultTTL,
		now:            time.Now,
	}
}

// Close releases the cache and store.
func (r *Runner) Close() error {
	return errors.Join(r.Cache.Close(), r.Store.Close())
}

// Factorial returns n! in decimal.
func (r *Runner) Factorial(ctx context.Context, n int) (string, error) {
	if n <= lehmer.MaxLength {
		v, err := r.Codec.Factorial(n)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	}
	v, err := r.Codec.FactorialBig(n)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Encode returns the Lehmer code of p.
func (r *Runner) Encode(ctx context.Context, p []int) (Result, error) {
	start := time.Now()
	res, err := r.encode(ctx, p)
	observability.Codec().OnEncode(ctx, len(p), time.Since(start), err)
	if err != nil {
		return Result{}, err
	}
	r.Logger.Debug("encoded", "length", res.Length, "big", res.Big, "cached", res.CacheHit, "duration", time.Since(start))
	return res, nil
}

func (r *Runner) encode(ctx context.Context, p []int) (Result, error) {
	res := Result{Length: len(p)}

	if len(p) <= lehmer.MaxLength {
		code, err := r.Codec.Encode(p)
		if err != nil {
			return Result{}, err
		}
		res.Code = strconv.FormatInt(code, 10)
		return res, nil
	}

	if err := lehmer.Validate(p); err != nil {
		return Result{}, err
	}
	res.Big = true

	cacheable := len(p) > r.CacheThreshold
	var key string
	if cacheable {
		key = r.Keyer.EncodeKey(p)
		if data, ok := r.cacheGet(ctx, keyTypeEncode, key); ok {
			if c, ok := new(big.Int).SetString(string(data), 10); ok {
				res.Code = c.String()
				res.CacheHit = true
				return res, nil
			}
		}
	}

	code, err := r.Codec.EncodeBig(p)
	if err != nil {
		return Result{}, err
	}
	res.Code = code.String()
	if cacheable {
		r.cacheSet(ctx, keyTypeEncode, key, []byte(res.Code))
	}
	return res, nil
}

// Decode returns the permutation of 0..length-1 with the given decimal code.
func (r *Runner) Decode(ctx context.Context, length int, code string) (Result, error) {
	c, ok := new(big.Int).SetString(code, 10)
	if !ok {
		return Result{}, lerrors.New(lerrors.ErrCodeInvalidFormat, "code %q is not a decimal integer", code)
	}

	start := time.Now()
	res, err := r.decode(ctx, length, c)
	observability.Codec().OnDecode(ctx, length, res.Big, time.Since(start), err)
	if err != nil {
		return Result{}, err
	}
	r.Logger.Debug("decoded", "length", length, "big", res.Big, "cached", res.CacheHit, "duration", time.Since(start))
	return res, nil
}

func (r *Runner) decode(ctx context.Context, length int, code *big.Int) (Result, error) {
	res := Result{Length: length, Code: code.String()}

	if length <= lehmer.MaxLength && code.IsInt64() {
		p, err := r.Codec.Decode(length, code.Int64())
		if err != nil {
			return res, err
		}
		res.Permutation = p
		return res, nil
	}
	res.Big = true

	cacheable := length > r.CacheThreshold
	var key string
	if cacheable {
		key = r.Keyer.DecodeKey(length, res.Code)
		if data, ok := r.cacheGet(ctx, keyTypeDecode, key); ok {
			var p []int
			if err := json.Unmarshal(data, &p); err == nil && len(p) == length {
				res.Permutation = p
				res.CacheHit = true
				return res, nil
			}
			r.Logger.Warn("discarding corrupt cache entry", "key", key)
		}
	}

	p, err := r.Codec.DecodeBig(length, code)
	if err != nil {
		return res, err
	}
	res.Permutation = p

	if cacheable {
		if data, err := json.Marshal(p); err == nil {
			r.cacheSet(ctx, keyTypeDecode, key, data)
		}
	}
	return res, nil
}

func (r *Runner) cacheGet(ctx context.Context, keyType, key string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	switch {
	case err != nil:
		observability.Cache().OnCacheError(ctx, keyType, err)
		r.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	case !hit:
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

func (r *Runner) cacheSet(ctx context.Context, keyType, key string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		observability.Cache().OnCacheError(ctx, keyType, err)
		r.Logger.Warn("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
