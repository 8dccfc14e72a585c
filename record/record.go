// Package record implements writeBio/readBio: per-record framing and the
// per-tag dispatch across every wire type in {scalar, array, list} form
// (spec §4.3, §6.2). It is the codec's largest single component — every
// other package (stream, dictionary, object, factory) exists to support
// this one's per-tag encode/decode loop.
package record

import (
	"fmt"

	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/factory"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/stream"
)

// Codec drives writeBio/readBio against a process-wide dictionary
// Registry and record Factory. Strict mirrors the per-instance
// "validated" configuration flag (spec §6.4): true fails on unknown
// dictionaries/objects, false silently omits them.
type Codec struct {
	Registry *dictionary.Registry
	Factory  *factory.Factory
	Strict   bool
}

// NewCodec builds a record Codec.
func NewCodec(reg *dictionary.Registry, fac *factory.Factory, strict bool) *Codec {
	return &Codec{Registry: reg, Factory: fac, Strict: strict}
}

func containerOf(tag *dictionary.BioTag) format.Container {
	switch {
	case tag.IsList:
		return format.ContainerList
	case tag.IsArray:
		return format.ContainerArray
	default:
		return format.ContainerScalar
	}
}

// WriteBio encodes rec's body onto bo. wrote is false only in lenient mode
// when rec's dictionary or object schema is unregistered, signalling the
// caller to omit this element entirely rather than emit nothing useful.
func (c *Codec) WriteBio(bo *stream.BoStream, rec *object.BioObject) (wrote bool, err error) {
	if rec.IsProperties() {
		if err := c.writePropertiesBody(bo, rec); err != nil {
			return false, err
		}
		return true, nil
	}

	dict, ok := c.Registry.Dictionary(rec.Dictionary)
	if !ok {
		if c.Strict {
			return false, errs.Wrap("encode", rec.Name, "", errs.ErrUnknownDictionary)
		}
		return false, nil
	}

	obj, ok := dict.ObjByCode(rec.Code)
	if !ok {
		if c.Strict {
			return false, errs.Wrap("encode", rec.Name, "", errs.ErrUnknownObject)
		}
		return false, nil
	}

	prevMode := bo.LengthAsInt()
	if obj.IsLarge {
		bo.SetLengthAsInt(true)
	}
	defer bo.SetLengthAsInt(prevMode)

	bo.WriteUint8(rec.Dictionary)
	bo.WriteUint16(rec.Code)
	bo.WriteUint16(rec.Version)

	var writeErr error
	rec.Range(func(key string, value any) bool {
		tag, found := obj.TagByName(key)
		if !found {
			tag, found = dict.SuperTagByName(key)
		}
		if !found || !tag.Encodable {
			return true
		}

		if err := c.writeValue(bo, obj.NarrowTagCodes, tag, value); err != nil {
			writeErr = errs.Wrap("encode", obj.Name, tag.Name, err)
			return false
		}
		return true
	})

	if writeErr != nil {
		return false, writeErr
	}
	return true, nil
}

// ReadBio decodes one record body from bi. rec is nil (with no error) when
// the dictionary/object is unknown in lenient mode.
func (c *Codec) ReadBio(bi *stream.BiStream) (*object.BioObject, error) {
	dictID, err := bi.ReadUint8()
	if err != nil {
		return nil, errs.Wrap("decode", "", "", errs.ErrInvalidHeader)
	}
	code, err := bi.ReadUint16()
	if err != nil {
		return nil, errs.Wrap("decode", "", "", errs.ErrInvalidHeader)
	}
	version, err := bi.ReadUint16()
	if err != nil {
		return nil, errs.Wrap("decode", "", "", errs.ErrInvalidHeader)
	}

	if code == 0 && version == 0 {
		return c.readPropertiesBody(bi, dictID)
	}

	dict, ok := c.Registry.Dictionary(dictID)
	if !ok {
		if c.Strict {
			return nil, errs.Wrap("decode", "", "", errs.ErrUnknownDictionary)
		}
		return nil, nil
	}

	obj, ok := dict.ObjByCode(code)
	if !ok {
		if c.Strict {
			return nil, errs.Wrap("decode", "", "", errs.ErrUnknownObject)
		}
		return nil, nil
	}

	prevMode := bi.LengthAsInt()
	if obj.IsLarge {
		bi.SetLengthAsInt(true)
	}
	defer bi.SetLengthAsInt(prevMode)

	rec := c.Factory.NewRecord(obj)
	rec.Dictionary, rec.Code, rec.Version, rec.Name = dictID, code, version, obj.Name

	for bi.Available() > 0 {
		header, err := bi.ReadTagHeader(obj.NarrowTagCodes)
		if err != nil {
			return nil, errs.Wrap("decode", obj.Name, "", err)
		}

		tag, found := obj.TagByCode(header.Code)
		if !found {
			tag, found = dict.SuperTagByCode(header.Code)
		}

		value, err := c.readValue(bi, format.BioType(header.Type), format.Container(header.Container), tag)
		if err != nil {
			name := ""
			if tag != nil {
				name = tag.Name
			}
			return nil, errs.Wrap("decode", obj.Name, name, err)
		}

		if found && value != nil {
			rec.Set(tag.Name, value)
		}
	}

	return rec, nil
}

func unsupported(typ format.BioType, container format.Container) error {
	return fmt.Errorf("%w: %s/%s", errs.ErrUnsupportedTypeContainer, typ, container)
}
