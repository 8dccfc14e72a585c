// Package bio implements a schema-driven binary codec for tag-based "bio
// objects": outer framing with optional compression/encryption, per-tag
// type dispatch against a process-wide dictionary registry, and an XML
// lossless lane for human/foreign-tool readability.
//
// Basic usage:
//
//	reg := dictionary.NewRegistry()
//	reg.Register(myDictionary)
//
//	codec, err := bio.New(reg, bio.WithCompression(compress.NewZstdCodec()))
//	if err != nil { ... }
//
//	rec := object.New(1, 10, 1, "Greeting")
//	rec.Set("greeting", "hi")
//
//	data, err := codec.Encode(rec)
//	decoded, err := codec.Decode(data)
package bio

import (
	"fmt"

	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/frame"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/record"
)

// Codec is the public entry point: a configured frame.Codec bound to a
// dictionary Registry.
type Codec struct {
	frame    *frame.Codec
	registry *dictionary.Registry
}

// New builds a Codec against reg, applying opts in order (see
// WithCompression, WithEncryption, WithLossless, WithValidated,
// WithFactory).
func New(reg *dictionary.Registry, opts ...Option) (*Codec, error) {
	cfg, err := NewConfig(reg, opts...)
	if err != nil {
		return nil, fmt.Errorf("bio: invalid configuration: %w", err)
	}

	recCodec := record.NewCodec(cfg.registry, cfg.factory, cfg.validated)
	frameCodec := frame.NewCodec(recCodec, cfg.compressor, cfg.sealer)
	frameCodec.Compressed = cfg.compressed
	frameCodec.Encrypted = cfg.encrypted
	frameCodec.Lossless = cfg.lossless

	return &Codec{frame: frameCodec, registry: cfg.registry}, nil
}

func (c *Codec) isLarge(dictID uint8, code uint16) bool {
	dict, ok := c.registry.Dictionary(dictID)
	if !ok {
		return false
	}
	obj, ok := dict.ObjByCode(code)
	if !ok {
		return false
	}
	return obj.IsLarge
}

// Encode frames a single record.
func (c *Codec) Encode(rec *object.BioObject) ([]byte, error) {
	return c.frame.Encode(frame.ShapeSingle, []*object.BioObject{rec}, false)
}

// Decode reverses Encode. It returns an error if data frames an array or
// list instead of a single record.
func (c *Codec) Decode(data []byte) (*object.BioObject, error) {
	shape, elems, err := c.frame.Decode(data, false)
	if err != nil {
		return nil, err
	}
	if shape != frame.ShapeSingle {
		return nil, errs.Wrap("decode", "", "", errs.ErrTypeMismatch)
	}
	if len(elems) == 0 {
		return nil, nil
	}
	return elems[0], nil
}

// EncodeArray frames elems as an array (spec §4.1's FLAG_ARRAY); only
// DecodeArray accepts the result. elems must share a single
// dictionary/object schema; its isLarge flag controls the per-element
// length prefix width.
func (c *Codec) EncodeArray(elems []*object.BioObject) ([]byte, error) {
	large := false
	if len(elems) > 0 {
		large = c.isLarge(elems[0].Dictionary, elems[0].Code)
	}
	return c.frame.Encode(frame.ShapeArray, elems, large)
}

// DecodeArray reverses EncodeArray. dictID/code identify the element
// schema so the per-element length prefix width (u16 vs u32) can be
// resolved before any element is parsed — the wire carries no bit of its
// own for this, since both sides already agree on it out-of-band via the
// shared schema (spec §4.3).
func (c *Codec) DecodeArray(data []byte, dictID uint8, code uint16) ([]*object.BioObject, error) {
	shape, elems, err := c.frame.Decode(data, c.isLarge(dictID, code))
	if err != nil {
		return nil, err
	}
	if shape != frame.ShapeArray {
		return nil, errs.Wrap("decode", "", "", errs.ErrTypeMismatch)
	}
	return elems, nil
}

// EncodeList frames elems as a list (spec §4.1's FLAG_LIST). The frame's
// flag keeps list-vs-array fidelity: DecodeList returns the elements as a
// []*object.BioObject and fails on an array frame, as DecodeArray does on
// a list frame.
func (c *Codec) EncodeList(elems []*object.BioObject) ([]byte, error) {
	large := false
	if len(elems) > 0 {
		large = c.isLarge(elems[0].Dictionary, elems[0].Code)
	}
	return c.frame.Encode(frame.ShapeList, elems, large)
}

// DecodeList reverses EncodeList; see DecodeArray for dictID/code.
func (c *Codec) DecodeList(data []byte, dictID uint8, code uint16) ([]*object.BioObject, error) {
	shape, elems, err := c.frame.Decode(data, c.isLarge(dictID, code))
	if err != nil {
		return nil, err
	}
	if shape != frame.ShapeList {
		return nil, errs.Wrap("decode", "", "", errs.ErrTypeMismatch)
	}
	return elems, nil
}
