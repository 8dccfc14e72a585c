// Package format defines the wire-level type constants shared by every
// layer of the codec: the bio value types, their on-wire container kind,
// the outer frame flag bits, and the pluggable compression enum.
//
// These values are fixed for wire compatibility — do not renumber them.
package format

// BioType is the 1-byte wire tag identifying the type of a tag's value.
type BioType uint8

const (
	TypeByte       BioType = 0x01
	TypeShort      BioType = 0x02
	TypeInteger    BioType = 0x03
	TypeLong       BioType = 0x04
	TypeFloat      BioType = 0x05
	TypeDouble     BioType = 0x06
	TypeBoolean    BioType = 0x07
	TypeString     BioType = 0x08 // ASCII
	TypeUtfString  BioType = 0x09
	TypeTime       BioType = 0x0A // epoch ms, stored as Long
	TypeBioEnum    BioType = 0x0B // ordinal, stored as Integer
	TypeJavaObject BioType = 0x0C // opaque blob
	TypeBioObject  BioType = 0x0D // nested record
	TypeProperties BioType = 0x0E // nested schema-less record
)

func (t BioType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInteger:
		return "Integer"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeBoolean:
		return "Boolean"
	case TypeString:
		return "String"
	case TypeUtfString:
		return "UtfString"
	case TypeTime:
		return "Time"
	case TypeBioEnum:
		return "BioEnum"
	case TypeJavaObject:
		return "JavaObject"
	case TypeBioObject:
		return "BioObject"
	case TypeProperties:
		return "Properties"
	default:
		return "Unknown"
	}
}

// Container identifies whether a tag's on-wire payload is a scalar, a
// fixed-length array, or a list. Arrays and lists share an on-wire layout
// but must round-trip to their own Go container kind (slice vs List).
type Container uint8

const (
	ContainerScalar Container = 0
	ContainerArray  Container = 1
	ContainerList   Container = 2
)

func (c Container) String() string {
	switch c {
	case ContainerScalar:
		return "Scalar"
	case ContainerArray:
		return "Array"
	case ContainerList:
		return "List"
	default:
		return "Unknown"
	}
}

// Flag is the outer frame's single flag byte. Bits are independent and
// may be combined (e.g. COMPRESSED|ENCRYPTED).
type Flag uint8

const (
	FlagCompressed Flag = 0x01
	FlagArray      Flag = 0x02
	FlagList       Flag = 0x04
	FlagEncrypted  Flag = 0x08
	FlagXML        Flag = 0x10
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }

func (f Flag) With(bit Flag) Flag { return f | bit }

func (f Flag) Without(bit Flag) Flag { return f &^ bit }

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}

	s := ""
	add := func(bit Flag, name string) {
		if f.Has(bit) {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add(FlagCompressed, "COMPRESSED")
	add(FlagArray, "ARRAY")
	add(FlagList, "LIST")
	add(FlagEncrypted, "ENCRYPTED")
	add(FlagXML, "XML")

	return s
}

// CompressionType selects the pluggable compressor used for a codec
// instance. Unlike the wire-level BioType/Flag values, this is a
// runtime-configuration enum and carries no on-wire representation of its
// own (the frame only records whether compression was applied, not which
// algorithm — algorithm choice is out-of-band, agreed by both sides ahead
// of time, exactly like the dictionary schema itself).
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x01
	CompressionZstd CompressionType = 0x02
	CompressionS2   CompressionType = 0x03
	CompressionLZ4  CompressionType = 0x04
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
