package hashing

import (
	"fmt"
	"log/slog"
)

// BcryptOptions configures a [BcryptHasher].
//
// Algorithm and Cost carry JSON tags so callers can embed BcryptOptions in
// their own configuration files; the collaborators must be wired in code.
type BcryptOptions struct {
	// Algorithm is the version tag written into new hashes.
	// Default: [Algorithm2b].
	Algorithm Algorithm `json:"algorithm"`

	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [MinCost (4), MaxCost (31)].
	// Default: [DefaultCost] (12).
	Cost int `json:"cost"`

	// Engine derives digests. Nil selects [DefaultEngine].
	Engine Engine `json:"-"`

	// Entropy supplies salt bytes. Nil selects [SystemEntropy].
	Entropy EntropySource `json:"-"`

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger `json:"-"`
}

// DefaultBcryptOptions returns BcryptOptions with [Algorithm2b] and
// [DefaultCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Algorithm: Algorithm2b, Cost: DefaultCost}
}

// BcryptHasher hashes and validates passwords in the modified-crypt bcrypt
// format.
//
// Hashes configured as 2y are derived as 2b, since the engines are only
// required to understand 2b, but are stored with their 2y tag.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use,
// provided its Engine and EntropySource are.
type BcryptHasher struct {
	cfg       Config
	entropy   EntropySource
	validator *Validator
	logger    *slog.Logger
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns an error matching [ErrInvalidOption] and [ErrInvalidCost] if Cost is
// outside [MinCost, MaxCost], or [ErrUnknownAlgorithm] for an unsupported tag.
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = Algorithm2b
	}
	cfg, err := Configure(opts.Algorithm, opts.Cost)
	if err != nil {
		return nil, err
	}
	if opts.Engine == nil {
		opts.Engine = DefaultEngine()
	}
	if opts.Entropy == nil {
		opts.Entropy = SystemEntropy{}
	}
	v, err := NewValidator(opts.Engine, opts.Logger)
	if err != nil {
		return nil, err
	}
	return &BcryptHasher{
		cfg:       cfg,
		entropy:   opts.Entropy,
		validator: v,
		logger:    v.logger,
	}, nil
}

// Hash hashes message under cfg using the default engine and [SystemEntropy].
// A zero cfg fails with [ErrInvalidOption].
func Hash(cfg Config, message string) (string, error) {
	h := &BcryptHasher{
		cfg:       cfg,
		entropy:   SystemEntropy{},
		validator: defaultValidator,
		logger:    defaultValidator.logger,
	}
	return h.Hash(message)
}

// Config returns the validated algorithm and cost.
func (h *BcryptHasher) Config() Config { return h.cfg }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cfg.cost }

// Algorithm returns the configured version tag.
func (h *BcryptHasher) Algorithm() Algorithm { return h.cfg.algorithm }

// Hash hashes password and returns a 60-character hash string such as
// "$2b$12$...". A fresh 16-byte salt is drawn for every call.
//
// Errors match [ErrEntropyUnavailable] when no salt could be drawn and
// [ErrDerivationFailed] when the engine fails. No hash is returned alongside
// an error.
//
// Security note: bcrypt ignores password bytes past the 72nd.
func (h *BcryptHasher) Hash(password string) (string, error) {
	field, err := GenerateSaltField(h.entropy, h.cfg)
	if err != nil {
		h.logger.Warn("salt generation failed", slog.Any("error", err))
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}

	rec := Record{Algorithm: h.cfg.algorithm, Cost: h.cfg.cost, Salt: field[TagLength+3:]}
	hash, err := h.validator.rehash(rec, []byte(password))
	if err != nil {
		h.logger.Warn("digest derivation failed", slog.Any("error", err))
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return hash, nil
}

// Validate reports whether password matches hash. Any version tag is
// accepted regardless of the hasher's configured algorithm.
func (h *BcryptHasher) Validate(password, hash string) bool {
	return h.validator.Validate(password, hash)
}

// NeedsRehash returns true if the version tag or work factor encoded in hash
// differs from the hasher's configuration. A lower stored cost means the hash
// is less secure than the current configuration; a higher stored cost means
// the configuration was intentionally dialled back (rare but handled).
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	rec, err := ParseRecord(hash)
	if err != nil {
		return false, err
	}
	return rec.Algorithm != h.cfg.algorithm || rec.Cost != h.cfg.cost, nil
}

// Info parses hash without verifying it.
func (h *BcryptHasher) Info(hash string) (Record, error) {
	return ParseRecord(hash)
}
