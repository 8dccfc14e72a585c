package record

import (
	"errors"

	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/stream"
)

// writePropertiesBody encodes a schema-less record (spec §4.4, §6.3): the
// zero header followed by repeated [keyNameUtf][type][container][value]
// triplets, with entries identified by name instead of a dictionary tag
// code. Types are inferred from each Go value since there is no schema to
// consult.
func (c *Codec) writePropertiesBody(bo *stream.BoStream, rec *object.BioObject) error {
	bo.WriteUint8(0)
	bo.WriteUint16(0)
	bo.WriteUint16(0)

	var outerErr error
	rec.Range(func(key string, value any) bool {
		typ, container, err := inferType(value)
		if err != nil {
			// No wire representation for this Go type; drop the entry,
			// matching the dictionary's "unencodable tag" omission.
			return true
		}

		bo.WriteUTFString(key)
		bo.WriteUint8(uint8(typ))
		bo.WriteUint8(uint8(container))

		tag := &dictionary.BioTag{Name: key, Type: typ,
			IsArray: container == format.ContainerArray,
			IsList:  container == format.ContainerList,
		}

		var werr error
		if container == format.ContainerScalar {
			werr = c.writeScalar(bo, tag, value)
		} else {
			werr = c.writeContainer(bo, tag, value)
		}
		if errors.Is(werr, errOmitted) {
			// A properties entry has no separate tag header to retract;
			// the key/type/container prefix is already written, so an
			// omitted nested value leaves a zero-length payload instead.
			bo.WriteBioBytes(nil)
			werr = nil
		}
		if werr != nil {
			outerErr = errs.Wrap("encode", "", key, werr)
			return false
		}
		return true
	})

	return outerErr
}

// readPropertiesBody decodes a schema-less record body, returning a
// BioObject with Code==0, Version==0 so it round-trips as a properties
// record (object.BioObject.IsProperties).
func (c *Codec) readPropertiesBody(bi *stream.BiStream, dictID uint8) (*object.BioObject, error) {
	rec := object.New(dictID, 0, 0, "")

	for bi.Available() > 0 {
		key, err := bi.ReadUTFString()
		if err != nil {
			return nil, errs.Wrap("decode", "", "", err)
		}
		typRaw, err := bi.ReadUint8()
		if err != nil {
			return nil, errs.Wrap("decode", "", key, err)
		}
		containerRaw, err := bi.ReadUint8()
		if err != nil {
			return nil, errs.Wrap("decode", "", key, err)
		}

		value, err := c.readValue(bi, format.BioType(typRaw), format.Container(containerRaw), nil)
		if err != nil {
			return nil, errs.Wrap("decode", "", key, err)
		}

		if value != nil {
			rec.Set(key, value)
		}
	}

	return rec, nil
}

// inferType derives the wire (type, container) pair for a properties
// value from its dynamic Go type, since schema-less entries carry no
// declared tag.
func inferType(value any) (format.BioType, format.Container, error) {
	switch v := value.(type) {
	case uint8:
		return format.TypeByte, format.ContainerScalar, nil
	case int8:
		return format.TypeByte, format.ContainerScalar, nil
	case int16:
		return format.TypeShort, format.ContainerScalar, nil
	case int32:
		return format.TypeInteger, format.ContainerScalar, nil
	case int64:
		return format.TypeLong, format.ContainerScalar, nil
	case float32:
		return format.TypeFloat, format.ContainerScalar, nil
	case float64:
		return format.TypeDouble, format.ContainerScalar, nil
	case bool:
		return format.TypeBoolean, format.ContainerScalar, nil
	case string:
		return format.TypeUtfString, format.ContainerScalar, nil
	case []byte:
		return format.TypeJavaObject, format.ContainerScalar, nil
	case *object.BioObject:
		if v.IsProperties() {
			return format.TypeProperties, format.ContainerScalar, nil
		}
		return format.TypeBioObject, format.ContainerScalar, nil

	case []int16:
		return format.TypeShort, format.ContainerArray, nil
	case []int32:
		return format.TypeInteger, format.ContainerArray, nil
	case []int64:
		return format.TypeLong, format.ContainerArray, nil
	case []float32:
		return format.TypeFloat, format.ContainerArray, nil
	case []float64:
		return format.TypeDouble, format.ContainerArray, nil
	case []bool:
		return format.TypeBoolean, format.ContainerArray, nil
	case []string:
		return format.TypeUtfString, format.ContainerArray, nil
	case [][]byte:
		return format.TypeJavaObject, format.ContainerArray, nil
	case []*object.BioObject:
		typ := format.TypeBioObject
		if len(v) > 0 && v[0].IsProperties() {
			typ = format.TypeProperties
		}
		return typ, format.ContainerArray, nil

	case object.List:
		if len(v) == 0 {
			return 0, 0, errs.ErrTypeMismatch
		}
		elemTyp, _, err := inferType(v[0])
		if err != nil {
			return 0, 0, err
		}
		return elemTyp, format.ContainerList, nil

	default:
		return 0, 0, errs.ErrTypeMismatch
	}
}
