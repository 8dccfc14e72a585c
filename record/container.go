package record

import (
	"errors"

	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/stream"
)

// writeContainer encodes an array- or list-valued tag. The container byte
// was already written by writeValue; the payload shape ([count][elements])
// is identical for both kinds, so only the Go input type (a native slice
// for arrays, an object.List for lists) distinguishes them here.
func (c *Codec) writeContainer(bo *stream.BoStream, tag *dictionary.BioTag, value any) error {
	switch tag.Type {
	case format.TypeByte:
		return writeFixedArray(bo, value, func(v any) (uint8, bool) { return asByte(v) }, bo.WriteUint8)

	case format.TypeShort:
		return writeFixedArray(bo, value, func(v any) (int16, bool) { x, ok := v.(int16); return x, ok }, bo.WriteInt16)

	case format.TypeInteger:
		return writeFixedArray(bo, value, func(v any) (int32, bool) { x, ok := v.(int32); return x, ok }, bo.WriteInt32)

	case format.TypeLong, format.TypeTime:
		return writeFixedArray(bo, value, func(v any) (int64, bool) { x, ok := v.(int64); return x, ok }, bo.WriteInt64)

	case format.TypeFloat:
		return writeFixedArray(bo, value, func(v any) (float32, bool) { x, ok := v.(float32); return x, ok }, bo.WriteFloat32)

	case format.TypeDouble:
		return writeFixedArray(bo, value, func(v any) (float64, bool) { x, ok := v.(float64); return x, ok }, bo.WriteFloat64)

	case format.TypeBoolean:
		return writeFixedArray(bo, value, func(v any) (bool, bool) { x, ok := v.(bool); return x, ok }, bo.WriteBool)

	case format.TypeString:
		return writeFixedArray(bo, value, func(v any) (string, bool) { x, ok := v.(string); return x, ok }, bo.WriteASCIIString)

	case format.TypeUtfString:
		return writeFixedArray(bo, value, func(v any) (string, bool) { x, ok := v.(string); return x, ok }, bo.WriteUTFString)

	case format.TypeBioEnum:
		return writeFixedArray(bo, value, asEnumOrdinal, bo.WriteInt32)

	case format.TypeJavaObject:
		return writeFixedArray(bo, value, func(v any) ([]byte, bool) { x, ok := v.([]byte); return x, ok }, bo.WriteBioBytes)

	case format.TypeBioObject, format.TypeProperties:
		return c.writeObjectArray(bo, value)

	default:
		return unsupported(tag.Type, format.ContainerArray)
	}
}

func elements(value any) ([]any, error) {
	switch v := value.(type) {
	case object.List:
		return []any(v), nil
	case []any:
		return v, nil
	default:
		return nil, errs.ErrTypeMismatch
	}
}

// writeFixedArray writes [count][elem1]...[elemN] for a tag whose elements
// are a fixed-width or self-framed scalar type. value is either a native
// Go slice (array container) or an object.List (list container). A native
// []T is written directly; an object.List or []any is written element by
// element, each asserted to T.
func writeFixedArray[T any](bo *stream.BoStream, value any, assert func(any) (T, bool), write func(T)) error {
	native, isNative := nativeSlice[T](value)
	if isNative {
		bo.WriteLength(len(native))
		for _, v := range native {
			write(v)
		}
		return nil
	}

	items, err := elements(value)
	if err != nil {
		return err
	}

	bo.WriteLength(len(items))
	for _, item := range items {
		v, ok := assert(item)
		if !ok {
			return errs.ErrTypeMismatch
		}
		write(v)
	}
	return nil
}

func nativeSlice[T any](value any) ([]T, bool) {
	v, ok := value.([]T)
	return v, ok
}

func (c *Codec) writeObjectArray(bo *stream.BoStream, value any) error {
	items, err := objectElements(value)
	if err != nil {
		return err
	}

	bo.WriteLength(len(items))
	for _, rec := range items {
		if err := c.writeNested(bo, rec); err != nil {
			if errors.Is(err, errOmitted) {
				// Unlike a scalar tag, an array/list slot can't be
				// dropped without desynchronizing the declared count,
				// so an omitted element keeps its slot with no bytes.
				bo.WriteBioBytes(nil)
				continue
			}
			return err
		}
	}
	return nil
}

func objectElements(value any) ([]*object.BioObject, error) {
	switch v := value.(type) {
	case []*object.BioObject:
		return v, nil
	case object.List:
		out := make([]*object.BioObject, len(v))
		for i, item := range v {
			rec, ok := item.(*object.BioObject)
			if !ok {
				return nil, errs.ErrTypeMismatch
			}
			out[i] = rec
		}
		return out, nil
	default:
		return nil, errs.ErrTypeMismatch
	}
}

func (c *Codec) readContainer(bi *stream.BiStream, typ format.BioType, container format.Container, tag *dictionary.BioTag) (any, error) {
	n, err := bi.ReadLength()
	if err != nil {
		return nil, err
	}

	switch typ {
	case format.TypeByte:
		return readFixedArray(bi, container, n, bi.ReadUint8)

	case format.TypeShort:
		return readFixedArray(bi, container, n, bi.ReadInt16)

	case format.TypeInteger:
		return readFixedArray(bi, container, n, bi.ReadInt32)

	case format.TypeLong, format.TypeTime:
		return readFixedArray(bi, container, n, bi.ReadInt64)

	case format.TypeFloat:
		return readFixedArray(bi, container, n, bi.ReadFloat32)

	case format.TypeDouble:
		return readFixedArray(bi, container, n, bi.ReadFloat64)

	case format.TypeBoolean:
		return readFixedArray(bi, container, n, bi.ReadBool)

	case format.TypeString:
		return readFixedArray(bi, container, n, bi.ReadASCIIString)

	case format.TypeUtfString:
		return readFixedArray(bi, container, n, bi.ReadUTFString)

	case format.TypeBioEnum:
		return c.readEnumArray(bi, container, n, tag)

	case format.TypeJavaObject:
		return readFixedArray(bi, container, n, func() ([]byte, error) {
			raw, err := bi.ReadBioBytes()
			if err != nil {
				return nil, err
			}
			return append([]byte(nil), raw...), nil
		})

	case format.TypeBioObject, format.TypeProperties:
		return c.readObjectArray(bi, container, n)

	default:
		return nil, unsupported(typ, container)
	}
}

// readFixedArray consumes n elements via read, producing a native Go slice
// for Array containers and an object.List for List containers — mirroring
// whichever shape the encoder was given.
func readFixedArray[T any](bi *stream.BiStream, container format.Container, n int, read func() (T, error)) (any, error) {
	if container == format.ContainerList {
		out := make(object.List, n)
		for i := 0; i < n; i++ {
			v, err := read()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := read()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (c *Codec) readEnumArray(bi *stream.BiStream, container format.Container, n int, tag *dictionary.BioTag) (any, error) {
	ordinals := make([]int32, n)
	for i := 0; i < n; i++ {
		v, err := bi.ReadInt32()
		if err != nil {
			return nil, err
		}
		ordinals[i] = v
	}

	var enumObj *dictionary.BioEnumObj
	if tag != nil {
		enumObj = tag.EnumObj
	}

	if container == format.ContainerList {
		out := make(object.List, 0, n)
		for _, ord := range ordinals {
			if enumObj == nil {
				continue
			}
			if v, ok := enumObj.BioEnum(ord); ok {
				out = append(out, v)
			}
		}
		return out, nil
	}

	out := make([]dictionary.BioEnumValue, 0, n)
	for _, ord := range ordinals {
		if enumObj == nil {
			continue
		}
		if v, ok := enumObj.BioEnum(ord); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *Codec) readObjectArray(bi *stream.BiStream, container format.Container, n int) (any, error) {
	if container == format.ContainerList {
		out := make(object.List, 0, n)
		for i := 0; i < n; i++ {
			rec, err := c.readNested(bi)
			if err != nil {
				return nil, err
			}
			if rec != nil {
				out = append(out, rec)
			}
		}
		return out, nil
	}

	out := make([]*object.BioObject, 0, n)
	for i := 0; i < n; i++ {
		rec, err := c.readNested(bi)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out, nil
}
