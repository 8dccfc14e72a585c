package bio

import (
	"bytes"
	"testing"

	"github.com/corvidlabs/biocodec/compress"
	"github.com/corvidlabs/biocodec/dictionary"
	"github.com/corvidlabs/biocodec/format"
	"github.com/corvidlabs/biocodec/object"
	"github.com/corvidlabs/biocodec/seal"
	"github.com/stretchr/testify/require"
)

func testRegistry() *dictionary.Registry {
	reg := dictionary.NewRegistry()
	dict := dictionary.NewDictionary(1)

	greeting := dictionary.NewBioObj(1, 10, 1, "Greeting")
	greeting.AddTag(&dictionary.BioTag{Code: 1, Name: "greeting", Type: format.TypeUtfString, Encodable: true})
	dict.AddObject(greeting)

	nums := dictionary.NewBioObj(1, 11, 1, "Numbers")
	nums.AddTag(&dictionary.BioTag{Code: 1, Name: "xs", Type: format.TypeInteger, IsArray: true, Encodable: true})
	dict.AddObject(nums)

	child := dictionary.NewBioObj(1, 12, 1, "Child")
	child.AddTag(&dictionary.BioTag{Code: 1, Name: "n", Type: format.TypeInteger, Encodable: true})
	dict.AddObject(child)

	parent := dictionary.NewBioObj(1, 13, 1, "Parent")
	parent.AddTag(&dictionary.BioTag{Code: 1, Name: "items", Type: format.TypeBioObject, IsList: true, NestedObj: child, Encodable: true})
	dict.AddObject(parent)

	statusEnum := dictionary.NewBioEnumObj(1)
	statusEnum.AddVariant(0, "PENDING")
	statusEnum.AddVariant(3, "DONE")
	dict.AddEnum(statusEnum)

	task := dictionary.NewBioObj(1, 14, 1, "Task")
	task.AddTag(&dictionary.BioTag{Code: 1, Name: "status", Type: format.TypeBioEnum, EnumObj: statusEnum, Encodable: true})
	dict.AddObject(task)

	reg.Register(dict)
	return reg
}

func TestEncodeDecodeSingleRecord(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	rec := object.New(1, 10, 1, "Greeting")
	rec.Set("greeting", "hi")

	data, err := codec.Encode(rec)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	v, ok := decoded.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "hi", v)
}

func TestEncodeDecodeArrayOfScalars(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	rec := object.New(1, 11, 1, "Numbers")
	rec.Set("xs", []int32{1, 2, 3})

	data, err := codec.Encode(rec)
	require.NoError(t, err)
	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	v, ok := decoded.Get("xs")
	require.True(t, ok)
	require.Equal(t, []int32{1, 2, 3}, v)
}

func TestEncodeDecodeArrayShape(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	r1 := object.New(1, 10, 1, "Greeting")
	r1.Set("greeting", "hi")
	r2 := object.New(1, 10, 1, "Greeting")
	r2.Set("greeting", "bye")

	data, err := codec.EncodeArray([]*object.BioObject{r1, r2})
	require.NoError(t, err)

	elems, err := codec.DecodeArray(data, 1, 10)
	require.NoError(t, err)
	require.Len(t, elems, 2)
}

func TestEncodeDecodeListOfNestedRecords(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	child1 := object.New(1, 12, 1, "Child")
	child1.Set("n", int32(1))
	child2 := object.New(1, 12, 1, "Child")
	child2.Set("n", int32(2))

	parent := object.New(1, 13, 1, "Parent")
	parent.Set("items", object.List{child1, child2})

	data, err := codec.Encode(parent)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	v, ok := decoded.Get("items")
	require.True(t, ok)
	list, ok := v.(object.List)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestEncodeDecodeEnum(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	rec := object.New(1, 14, 1, "Task")
	rec.Set("status", int32(3))

	data, err := codec.Encode(rec)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)

	v, ok := decoded.Get("status")
	require.True(t, ok)
	enumVal, ok := v.(dictionary.BioEnumValue)
	require.True(t, ok)
	require.Equal(t, "DONE", enumVal.Name)
}

func TestEncodeDecodeProperties(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	rec := object.NewProperties()
	rec.Set("a", int32(7))
	rec.Set("b", "x")

	data, err := codec.Encode(rec)
	require.NoError(t, err)

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	require.True(t, decoded.IsProperties())

	a, _ := decoded.Get("a")
	require.Equal(t, int32(7), a)
}

func TestEncodeDecodeWithCompression(t *testing.T) {
	reg := dictionary.NewRegistry()
	dict := dictionary.NewDictionary(1)
	blob := dictionary.NewBioObj(1, 20, 1, "Blob")
	blob.AddTag(&dictionary.BioTag{Code: 1, Name: "data", Type: format.TypeJavaObject, Encodable: true})
	dict.AddObject(blob)
	reg.Register(dict)

	codec, err := New(reg, WithValidated(), WithCompression(compress.NewZstdCodec()))
	require.NoError(t, err)

	rec := object.New(1, 20, 1, "Blob")
	rec.Set("data", bytes.Repeat([]byte{0x00}, 1024))

	data, err := codec.Encode(rec)
	require.NoError(t, err)
	require.True(t, format.Flag(data[0]).Has(format.FlagCompressed))

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	v, _ := decoded.Get("data")
	require.Equal(t, bytes.Repeat([]byte{0x00}, 1024), v)
}

func TestEncodeDecodeWithEncryption(t *testing.T) {
	key := bytes.Repeat([]byte{0x5}, 32)
	sealer, err := seal.NewAESGCM(key)
	require.NoError(t, err)

	codec, err := New(testRegistry(), WithValidated(), WithEncryption(sealer))
	require.NoError(t, err)

	rec := object.New(1, 10, 1, "Greeting")
	rec.Set("greeting", "secret")

	data, err := codec.Encode(rec)
	require.NoError(t, err)
	require.True(t, format.Flag(data[0]).Has(format.FlagEncrypted))

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	v, _ := decoded.Get("greeting")
	require.Equal(t, "secret", v)
}

func TestEncodeDecodeLossless(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated(), WithLossless())
	require.NoError(t, err)

	rec := object.New(1, 10, 1, "Greeting")
	rec.Set("greeting", "hi")

	data, err := codec.Encode(rec)
	require.NoError(t, err)
	require.True(t, format.Flag(data[0]).Has(format.FlagXML))

	decoded, err := codec.Decode(data)
	require.NoError(t, err)
	v, _ := decoded.Get("greeting")
	require.Equal(t, "hi", v)
}

func TestUnknownDictionaryValidatedFails(t *testing.T) {
	codec, err := New(testRegistry(), WithValidated())
	require.NoError(t, err)

	rec := object.New(99, 1, 1, "Unknown")
	_, err = codec.Encode(rec)
	require.Error(t, err)
}
