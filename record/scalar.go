package record

import (
	"errors"

	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/stream"
)

// errOmitted signals that a nested BioObject/Properties value has no
// wire bytes to contribute (its dictionary or object is unregistered in
// lenient mode). It never escapes the record package: writeValue catches
// it and retracts the tag header it already wrote, so the entry leaves no
// trace on the wire (spec §3 invariant 5).
var errOmitted = errors.New("record: nested value omitted")

func (c *Codec) writeValue(bo *stream.BoStream, narrowTagCodes bool, tag *dictionary.BioTag, value any) error {
	container := containerOf(tag)
	headerStart := bo.Len()
	bo.WriteTagHeader(uint8(tag.Type), uint8(container), tag.Code, narrowTagCodes)

	var err error
	if container != format.ContainerScalar {
		err = c.writeContainer(bo, tag, value)
	} else {
		err = c.writeScalar(bo, tag, value)
	}
	if errors.Is(err, errOmitted) {
		bo.Truncate(headerStart)
		return nil
	}
	return err
}

func (c *Codec) writeScalar(bo *stream.BoStream, tag *dictionary.BioTag, value any) error {
	switch tag.Type {
	case format.TypeByte:
		v, ok := asByte(value)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteUint8(v)

	case format.TypeShort:
		v, ok := value.(int16)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteInt16(v)

	case format.TypeInteger:
		v, ok := value.(int32)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteInt32(v)

	case format.TypeLong, format.TypeTime:
		v, ok := value.(int64)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteInt64(v)

	case format.TypeFloat:
		v, ok := value.(float32)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteFloat32(v)

	case format.TypeDouble:
		v, ok := value.(float64)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteFloat64(v)

	case format.TypeBoolean:
		v, ok := value.(bool)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteBool(v)

	case format.TypeString:
		v, ok := value.(string)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteASCIIString(v)

	case format.TypeUtfString:
		v, ok := value.(string)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteUTFString(v)

	case format.TypeBioEnum:
		ordinal, ok := asEnumOrdinal(value)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteInt32(ordinal)

	case format.TypeJavaObject:
		v, ok := value.([]byte)
		if !ok {
			return errs.ErrTypeMismatch
		}
		bo.WriteBioBytes(v)

	case format.TypeBioObject:
		nested, ok := value.(*object.BioObject)
		if !ok {
			return errs.ErrTypeMismatch
		}
		return c.writeNested(bo, nested)

	case format.TypeProperties:
		nested, ok := value.(*object.BioObject)
		if !ok {
			return errs.ErrTypeMismatch
		}
		return c.writeNested(bo, nested)

	default:
		return unsupported(tag.Type, format.ContainerScalar)
	}

	return nil
}

// writeNested encodes rec into its own sub-stream and wraps it with
// writeBioBytes, the wire shape every scalar BioObject/Properties value
// and every BioObject[]/Properties[] element shares. It returns errOmitted
// when rec's dictionary or object is unregistered in lenient mode, leaving
// the caller to decide how an omission is represented at its level: a
// scalar tag drops the whole entry, while an array/list element keeps its
// slot with a zero-length payload so the declared count still matches.
func (c *Codec) writeNested(bo *stream.BoStream, rec *object.BioObject) error {
	sub := stream.NewBoStream()
	defer sub.Release()

	wrote, err := c.WriteBio(sub, rec)
	if err != nil {
		return err
	}
	if !wrote {
		return errOmitted
	}

	bo.WriteBioBytes(sub.Bytes())
	return nil
}

func (c *Codec) readScalar(bi *stream.BiStream, typ format.BioType, tag *dictionary.BioTag) (any, error) {
	switch typ {
	case format.TypeByte:
		return bi.ReadUint8()

	case format.TypeShort:
		return bi.ReadInt16()

	case format.TypeInteger:
		return bi.ReadInt32()

	case format.TypeLong, format.TypeTime:
		return bi.ReadInt64()

	case format.TypeFloat:
		return bi.ReadFloat32()

	case format.TypeDouble:
		return bi.ReadFloat64()

	case format.TypeBoolean:
		return bi.ReadBool()

	case format.TypeString:
		return bi.ReadASCIIString()

	case format.TypeUtfString:
		return bi.ReadUTFString()

	case format.TypeBioEnum:
		ordinal, err := bi.ReadInt32()
		if err != nil {
			return nil, err
		}
		if tag == nil || tag.EnumObj == nil {
			return nil, nil
		}
		v, ok := tag.EnumObj.BioEnum(ordinal)
		if !ok {
			return nil, nil
		}
		return v, nil

	case format.TypeJavaObject:
		raw, err := bi.ReadBioBytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), raw...), nil

	case format.TypeBioObject, format.TypeProperties:
		return c.readNested(bi)

	default:
		return nil, unsupported(typ, format.ContainerScalar)
	}
}

// readNested reads a length-prefixed nested record blob and decodes it in
// its own BiStream, which starts in the default u16 length mode whatever
// the outer record's mode is, matching writeNested's fresh sub-stream (a
// nested record's own isLarge governs only its own body, per spec §4.1).
func (c *Codec) readNested(bi *stream.BiStream) (*object.BioObject, error) {
	raw, err := bi.ReadBioBytes()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	sub := stream.NewBiStream(raw)
	return c.ReadBio(sub)
}

// readValue mirrors writeValue: it dispatches on the (type, container)
// observed on the wire, not on the tag's declared type, since tag may be
// nil for an unknown tag — the reader must still consume exactly the
// bytes that (type, container) implies so the stream doesn't desync.
func (c *Codec) readValue(bi *stream.BiStream, typ format.BioType, container format.Container, tag *dictionary.BioTag) (any, error) {
	if container == format.ContainerScalar {
		return c.readScalar(bi, typ, tag)
	}
	return c.readContainer(bi, typ, container, tag)
}

func asByte(value any) (uint8, bool) {
	switch v := value.(type) {
	case uint8:
		return v, true
	case int8:
		return uint8(v), true
	default:
		return 0, false
	}
}

func asEnumOrdinal(value any) (int32, bool) {
	switch v := value.(type) {
	case dictionary.BioEnumValue:
		return v.Ordinal, true
	case int32:
		return v, true
	default:
		return 0, false
	}
}
