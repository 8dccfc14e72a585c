package bio

import (
	"github.com/corvidlabs/biocodec/compress"
	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/factory"
	"github.com/corvidlabs/biocodec/seal"
)

// Config holds the runtime configuration a Codec is built from (spec
// §6.4's compressed/encrypted/lossless/validated flags plus the registry
// and factory collaborators). Zero value is a usable, fully permissive
// (non-strict) configuration with no compression, encryption, or lossless
// lane.
type Config struct {
	registry   *dictionary.Registry
	factory    *factory.Factory
	compressor compress.Codec
	sealer     seal.Sealer
	compressed bool
	encrypted  bool
	lossless   bool
	validated  bool
}

// Option configures a Config. Unlike the teacher's functional-option
// helper (which stays generic to serve two distinct encoder configs),
// bio.Config is the only option target in this codec, so Option closes
// over it directly rather than carrying a type parameter nothing here
// would instantiate twice.
type Option func(*Config) error

// applyOptions runs opts over cfg in order, stopping at the first error.
func applyOptions(cfg *Config, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}

	return nil
}

// NewConfig builds a Config against reg, applying opts in order.
func NewConfig(reg *dictionary.Registry, opts ...Option) (*Config, error) {
	cfg := &Config{
		registry: reg,
		factory:  factory.NewFactory(),
	}

	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFactory overrides the record Factory used to instantiate decoded
// records. The default is an empty factory.Factory that always falls
// back to the generic object.BioObject constructor.
func WithFactory(fac *factory.Factory) Option {
	return func(c *Config) error {
		c.factory = fac
		return nil
	}
}

// WithCompression enables the outer frame's compression step (spec §6.1)
// using codec. Compression is only applied to a given frame when it
// actually shrinks the payload (spec §4.4's size-guard invariant).
func WithCompression(codec compress.Codec) Option {
	return func(c *Config) error {
		c.compressor = codec
		c.compressed = true
		return nil
	}
}

// WithEncryption enables the outer frame's encryption step using sealer.
func WithEncryption(sealer seal.Sealer) Option {
	return func(c *Config) error {
		c.sealer = sealer
		c.encrypted = true
		return nil
	}
}

// WithLossless switches the codec to the XML lossless lane (spec §4.5):
// each record's inner bytes become its XML serialization instead of the
// compact binary record body.
func WithLossless() Option {
	return func(c *Config) error {
		c.lossless = true
		return nil
	}
}

// WithValidated makes decode/encode strict: an unknown dictionary or
// object fails instead of being silently omitted (spec §6.4's
// "validated" flag).
func WithValidated() Option {
	return func(c *Config) error {
		c.validated = true
		return nil
	}
}
