// Package factory implements the record-factory collaborator the record
// codec uses to instantiate a concrete record on decode (spec §6.5,
// §9 "reflective instantiation is replaced by an explicit record-factory
// interface keyed by (dictionary, code)").
//
// Go has no reflective per-schema record classes the way the original
// host language does; object.BioObject is already the single concrete
// record type. Factory's role narrows to letting a dictionary owner
// register a constructor that pre-populates defaults for a given
// (dictionary, code) — decode falls back to a bare object.BioObject when
// no constructor is registered, matching "if no class is registered, use
// a generic record".
package factory

import (
	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/object"
)

// Constructor builds a fresh record for one (dictionary, code) pair. The
// codec fills in Dictionary/Code/Version/Name after calling it, so a
// Constructor only needs to seed default tag values, if any.
type Constructor func() *object.BioObject

type key struct {
	dictionary uint8
	code       uint16
}

// Factory maps (dictionary, code) to a record Constructor.
type Factory struct {
	ctors map[key]Constructor
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{ctors: make(map[key]Constructor)}
}

// Register associates a constructor with (dictionary, code).
func (f *Factory) Register(dict uint8, code uint16, ctor Constructor) {
	f.ctors[key{dict, code}] = ctor
}

// NewRecord builds a record for obj, using a registered constructor if one
// exists or a bare object.BioObject otherwise.
func (f *Factory) NewRecord(obj *dictionary.BioObj) *object.BioObject {
	if ctor, ok := f.ctors[key{obj.Dictionary, obj.Code}]; ok {
		rec := ctor()
		rec.Dictionary, rec.Code, rec.Version, rec.Name = obj.Dictionary, obj.Code, obj.Version, obj.Name
		return rec
	}

	return object.New(obj.Dictionary, obj.Code, obj.Version, obj.Name)
}

// NewRecordArray allocates size empty records of obj's schema, e.g. for a
// decoder about to fill in a BioObject[] tag element by element.
func (f *Factory) NewRecordArray(obj *dictionary.BioObj, size int) []*object.BioObject {
	arr := make([]*object.BioObject, size)
	for i := range arr {
		arr[i] = f.NewRecord(obj)
	}
	return arr
}

// NewEnumArray allocates size zero-valued enum slots, e.g. for a decoder
// about to fill in a BioEnum[] tag element by element.
func (f *Factory) NewEnumArray(size int) []dictionary.BioEnumValue {
	return make([]dictionary.BioEnumValue, size)
}
