package xmlbridge

import (
	"testing"

	"github.com/corvidlabs/biocodec/object"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	rec := object.New(1, 10, 1, "Greeting")
	rec.Set("greeting", "hi")

	data, err := ToXML(rec)
	require.NoError(t, err)

	decoded, err := FromXML(data)
	require.NoError(t, err)
	require.Equal(t, uint8(1), decoded.Dictionary)
	require.Equal(t, uint16(10), decoded.Code)

	v, ok := decoded.Get("greeting")
	require.True(t, ok)
	require.Equal(t, "hi", v)
}

func TestNestedRecordRoundTrip(t *testing.T) {
	child := object.New(1, 12, 1, "Child")
	child.Set("n", "1")

	parent := object.New(1, 13, 1, "Parent")
	parent.Set("child", child)

	data, err := ToXML(parent)
	require.NoError(t, err)

	decoded, err := FromXML(data)
	require.NoError(t, err)

	v, ok := decoded.Get("child")
	require.True(t, ok)
	nested, ok := v.(*object.BioObject)
	require.True(t, ok)
	n, _ := nested.Get("n")
	require.Equal(t, "1", n)
}

func TestArrayOfRecordsRoundTrip(t *testing.T) {
	c1 := object.New(1, 12, 1, "Child")
	c1.Set("n", "1")
	c2 := object.New(1, 12, 1, "Child")
	c2.Set("n", "2")

	parent := object.New(1, 13, 1, "Parent")
	parent.Set("items", []*object.BioObject{c1, c2})

	data, err := ToXML(parent)
	require.NoError(t, err)

	decoded, err := FromXML(data)
	require.NoError(t, err)

	v, ok := decoded.Get("items")
	require.True(t, ok)
	items, ok := v.([]*object.BioObject)
	require.True(t, ok)
	require.Len(t, items, 2)
}
