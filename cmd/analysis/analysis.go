package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jcalabro/probable"
)

// valueSpace bounds the integer keys drawn in "int" mode.
const valueSpace = 1_000_000_000_000

// Config describes a single false positive measurement.
type Config struct {
	Items     uint64
	FPRate    float64
	Samples   uint64
	Keys      string // "int" or "uuid"
	Hasher    string // "xxh3" or "murmur3"
	Seed      uint64
	Tolerance float64 // allowed relative deviation from FPRate
}

// Result is the outcome of measuring one filter variant.
type Result struct {
	Variant        probable.Variant
	Params         probable.Params
	Size           uint64
	FalsePositives uint64
	Measured       float64
	Theoretical    float64
	InsertTime     time.Duration
	LookupTime     time.Duration
	Pass           bool
}

func (r Result) String() string {
	return fmt.Sprintf("%-11s %s size=%d fp=%d measured=%.5f theoretical=%.5f insert=%s lookup=%s",
		r.Variant, r.Params, r.Size, r.FalsePositives, r.Measured, r.Theoretical,
		r.InsertTime.Round(time.Millisecond), r.LookupTime.Round(time.Millisecond))
}

// keySource yields keys that were inserted and keys that never were.
type keySource interface {
	inserted(buf []byte) []byte
	absent(buf []byte) []byte
}

// intKeys draws 8-byte big-endian integers from [0, valueSpace]. Inserted
// keys are even and absent keys odd, so the two sets never overlap.
type intKeys struct {
	rng *rand.Rand
}

func (k intKeys) inserted(buf []byte) []byte {
	return binary.BigEndian.AppendUint64(buf[:0], k.rng.Uint64N(valueSpace+1)&^1)
}

func (k intKeys) absent(buf []byte) []byte {
	return binary.BigEndian.AppendUint64(buf[:0], k.rng.Uint64N(valueSpace+1)|1)
}

// uuidKeys uses random v4 UUIDs. Collisions between inserted and absent keys
// are negligible at any size this tool can allocate.
type uuidKeys struct{}

func (uuidKeys) inserted(buf []byte) []byte {
	id := uuid.New()
	return append(buf[:0], id[:]...)
}

func (uuidKeys) absent(buf []byte) []byte {
	id := uuid.New()
	return append(buf[:0], id[:]...)
}

func newKeySource(kind string, seed uint64) (keySource, error) {
	switch kind {
	case "int":
		return intKeys{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}, nil
	case "uuid":
		return uuidKeys{}, nil
	default:
		return nil, fmt.Errorf("unknown key kind %q (want int or uuid)", kind)
	}
}

func parseHasher(name string) (probable.Hasher, error) {
	switch name {
	case "xxh3":
		return probable.XXH3, nil
	case "murmur3":
		return probable.Murmur3, nil
	default:
		return nil, fmt.Errorf("unknown hasher %q (want xxh3 or murmur3)", name)
	}
}

// Measure fills a filter of variant v to cfg.Items and counts false
// positives over cfg.Samples absent keys.
func Measure(v probable.Variant, cfg Config) (Result, error) {
	if cfg.Samples == 0 {
		return Result{}, errors.New("samples must be at least 1")
	}
	hasher, err := parseHasher(cfg.Hasher)
	if err != nil {
		return Result{}, err
	}
	keys, err := newKeySource(cfg.Keys, cfg.Seed)
	if err != nil {
		return Result{}, err
	}
	params, err := probable.OptimalParams(cfg.Items, cfg.FPRate)
	if err != nil {
		return Result{}, err
	}
	f, err := probable.NewFilter(v, cfg.Items, cfg.FPRate, probable.WithHasher(hasher))
	if err != nil {
		return Result{}, err
	}

	buf := make([]byte, 0, 16)

	start := time.Now()
	for range cfg.Items {
		f.Add(keys.inserted(buf))
	}
	insertTime := time.Since(start)

	var fp uint64
	start = time.Now()
	for range cfg.Samples {
		if f.Test(keys.absent(buf)) {
			fp++
		}
	}
	lookupTime := time.Since(start)

	measured := float64(fp) / float64(cfg.Samples)
	bits := params.M
	if v == probable.Partitioned {
		bits = params.K * params.PartitionSize()
	}

	return Result{
		Variant:        v,
		Params:         params,
		Size:           f.Size(),
		FalsePositives: fp,
		Measured:       measured,
		Theoretical:    probable.EstimateFalsePositiveRate(bits, params.K, cfg.Items),
		InsertTime:     insertTime,
		LookupTime:     lookupTime,
		Pass:           within(measured, cfg.FPRate, cfg.Tolerance),
	}, nil
}

func within(measured, target, tolerance float64) bool {
	return measured >= target*(1-tolerance) && measured <= target*(1+tolerance)
}
