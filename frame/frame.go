// Package frame implements the outer frame codec (spec §4.2, §6.1): the
// flag byte, the optional compressed-length prefix, and the array/list
// count-prefixed wrapper shared by every encode/decode call.
package frame

import (
	"github.com/corvidlabs/biocodec/compress"
	"github.com/corvidlabs/biocodec/errs"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/record"
	"github.com/corvidlabs/biocodec/seal"
	"github.com/corvidlabs/biocodec/stream"
	"github.com/corvidlabs/biocodec/xmlbridge"
)

// Shape classifies the value being framed.
type Shape int

const (
	ShapeSingle Shape = iota
	ShapeArray
	ShapeList
)

// Codec drives the outer frame's encode/decode, delegating per-record
// framing to a record.Codec and per-element blobs to compress.Codec /
// seal.Sealer.
type Codec struct {
	Record     *record.Codec
	Compressor compress.Codec
	Sealer     seal.Sealer

	Compressed bool
	Encrypted  bool
	Lossless   bool
}

// NewCodec builds a frame Codec. compressor/sealer may be nil, in which
// case compress.NewNoOpCodec()/seal.NoOp{} are used.
func NewCodec(rec *record.Codec, compressor compress.Codec, sealer seal.Sealer) *Codec {
	if compressor == nil {
		compressor = compress.NewNoOpCodec()
	}
	if sealer == nil {
		sealer = seal.NoOp{}
	}
	return &Codec{Record: rec, Compressor: compressor, Sealer: sealer}
}

// Encode frames a single record, an array, or a list per shape (spec
// §4.2). elemIsLarge reports whether each element should be framed with a
// u32 (vs u16) length prefix — irrelevant for ShapeSingle.
func (c *Codec) Encode(shape Shape, elems []*object.BioObject, elemIsLarge bool) ([]byte, error) {
	var inner []byte
	var err error
	if c.Lossless {
		inner, err = c.encodeInnerXML(shape, elems)
	} else {
		inner, err = c.encodeInner(shape, elems, elemIsLarge)
	}
	if err != nil {
		return nil, err
	}

	var flag format.Flag
	if c.Lossless {
		flag = flag.With(format.FlagXML)
	}
	switch shape {
	case ShapeArray:
		flag = flag.With(format.FlagArray)
	case ShapeList:
		flag = flag.With(format.FlagList)
	}

	if c.Encrypted {
		encrypted, err := c.Sealer.Encrypt(inner)
		if err != nil {
			return nil, errs.Wrap("encode", "", "", err)
		}
		inner = encrypted
		flag = flag.With(format.FlagEncrypted)
	}

	if c.Compressed {
		compressed, err := c.Compressor.Compress(inner)
		if err != nil {
			return nil, errs.Wrap("encode", "", "", err)
		}

		if len(compressed)+4 < len(inner) {
			flag = flag.With(format.FlagCompressed)

			out := stream.NewBoStream()
			defer out.Release()
			out.WriteUint8(uint8(flag))
			out.WriteUint32(uint32(len(inner)))
			out.WriteRaw(compressed)
			return append([]byte(nil), out.Bytes()...), nil
		}
	}

	out := stream.NewBoStream()
	defer out.Release()
	out.WriteUint8(uint8(flag))
	out.WriteRaw(inner)
	return append([]byte(nil), out.Bytes()...), nil
}

func (c *Codec) encodeInner(shape Shape, elems []*object.BioObject, elemIsLarge bool) ([]byte, error) {
	if shape == ShapeSingle {
		if len(elems) != 1 {
			return nil, errs.Wrap("encode", "", "", errs.ErrTypeMismatch)
		}
		bo := stream.NewBoStream()
		defer bo.Release()

		wrote, err := c.Record.WriteBio(bo, elems[0])
		if err != nil {
			return nil, err
		}
		if !wrote {
			return nil, nil
		}
		return append([]byte(nil), bo.Bytes()...), nil
	}

	bo := stream.NewBoStream()
	defer bo.Release()

	bo.WriteUint16(uint16(len(elems)))
	bo.SetLengthAsInt(elemIsLarge)

	for _, elem := range elems {
		sub := stream.NewBoStream()
		wrote, err := c.Record.WriteBio(sub, elem)
		if err != nil {
			sub.Release()
			return nil, err
		}
		if wrote {
			bo.WriteBioBytes(sub.Bytes())
		} else {
			bo.WriteBioBytes(nil)
		}
		sub.Release()
	}

	return append([]byte(nil), bo.Bytes()...), nil
}

// encodeInnerXML mirrors encodeInner for the lossless lane (spec §4.5):
// each element's body is its XML serialization instead of its binary
// record body. The XML lane's array/list elements always use a u16 count
// and u16 element lengths, never u32, so it ignores elemIsLarge.
func (c *Codec) encodeInnerXML(shape Shape, elems []*object.BioObject) ([]byte, error) {
	if shape == ShapeSingle {
		if len(elems) != 1 {
			return nil, errs.Wrap("encode", "", "", errs.ErrTypeMismatch)
		}
		return xmlbridge.ToXML(elems[0])
	}

	bo := stream.NewBoStream()
	defer bo.Release()

	bo.WriteUint16(uint16(len(elems)))
	for _, elem := range elems {
		xmlBytes, err := xmlbridge.ToXML(elem)
		if err != nil {
			return nil, err
		}
		bo.WriteBioBytes(xmlBytes)
	}

	return append([]byte(nil), bo.Bytes()...), nil
}

// Decode reverses Encode, returning the decoded shape and its elements
// (one for ShapeSingle, or none when the record's dictionary or object is
// unknown in lenient mode). elemIsLarge must match the value
// passed to Encode for an array/list frame: the wire carries no per-array
// bit recording it, since both sides already agree on the element
// schema's BioObj.isLarge out-of-band (ignored for ShapeSingle, where the
// record header itself resolves isLarge via dictionary lookup).
func (c *Codec) Decode(data []byte, elemIsLarge bool) (Shape, []*object.BioObject, error) {
	bi := stream.NewBiStream(data)

	flagByte, err := bi.ReadUint8()
	if err != nil {
		return 0, nil, errs.Wrap("decode", "", "", errs.ErrInvalidFrame)
	}
	flag := format.Flag(flagByte)

	var payload []byte
	if flag.Has(format.FlagCompressed) {
		origLen, err := bi.ReadUint32()
		if err != nil {
			return 0, nil, errs.Wrap("decode", "", "", errs.ErrInvalidFrame)
		}
		rest, err := bi.ReadRaw(bi.Available())
		if err != nil {
			return 0, nil, errs.Wrap("decode", "", "", err)
		}
		payload, err = c.Compressor.Decompress(rest, int(origLen))
		if err != nil {
			return 0, nil, errs.Wrap("decode", "", "", err)
		}
	} else {
		payload, err = bi.ReadRaw(bi.Available())
		if err != nil {
			return 0, nil, errs.Wrap("decode", "", "", err)
		}
	}

	if flag.Has(format.FlagEncrypted) {
		decrypted, err := c.Sealer.Decrypt(payload)
		if err != nil {
			return 0, nil, errs.Wrap("decode", "", "", err)
		}
		payload = decrypted
	}

	lossless := flag.Has(format.FlagXML)

	switch {
	case flag.Has(format.FlagArray):
		elems, err := c.decodeSequenceDispatch(payload, elemIsLarge, lossless)
		return ShapeArray, elems, err
	case flag.Has(format.FlagList):
		elems, err := c.decodeSequenceDispatch(payload, elemIsLarge, lossless)
		return ShapeList, elems, err
	default:
		if lossless {
			rec, err := xmlbridge.FromXML(payload)
			if err != nil {
				return 0, nil, err
			}
			return ShapeSingle, []*object.BioObject{rec}, nil
		}
		rec, err := c.Record.ReadBio(stream.NewBiStream(payload))
		if err != nil {
			return 0, nil, err
		}
		if rec == nil {
			return ShapeSingle, nil, nil
		}
		return ShapeSingle, []*object.BioObject{rec}, nil
	}
}

func (c *Codec) decodeSequenceDispatch(payload []byte, elemIsLarge, lossless bool) ([]*object.BioObject, error) {
	if lossless {
		return c.decodeSequenceXML(payload)
	}
	return c.decodeSequence(payload, elemIsLarge)
}

// decodeSequenceXML mirrors decodeSequence for the lossless lane: element
// lengths are always u16, matching encodeInnerXML.
func (c *Codec) decodeSequenceXML(payload []byte) ([]*object.BioObject, error) {
	bi := stream.NewBiStream(payload)

	count, err := bi.ReadUint16()
	if err != nil {
		return nil, errs.Wrap("decode", "", "", errs.ErrInvalidFrame)
	}

	out := make([]*object.BioObject, 0, count)
	for i := uint16(0); i < count; i++ {
		elemBytes, err := bi.ReadBioBytes()
		if err != nil {
			return nil, errs.Wrap("decode", "", "", err)
		}
		if len(elemBytes) == 0 {
			continue
		}

		rec, err := xmlbridge.FromXML(elemBytes)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (c *Codec) decodeSequence(payload []byte, elemIsLarge bool) ([]*object.BioObject, error) {
	bi := stream.NewBiStream(payload)

	count, err := bi.ReadUint16()
	if err != nil {
		return nil, errs.Wrap("decode", "", "", errs.ErrInvalidFrame)
	}
	bi.SetLengthAsInt(elemIsLarge)

	out := make([]*object.BioObject, 0, count)
	for i := uint16(0); i < count; i++ {
		elemBytes, err := bi.ReadBioBytes()
		if err != nil {
			return nil, errs.Wrap("decode", "", "", err)
		}
		if len(elemBytes) == 0 {
			continue
		}

		rec, err := c.Record.ReadBio(stream.NewBiStream(elemBytes))
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, rec)
		}
	}

	return out, nil
}
