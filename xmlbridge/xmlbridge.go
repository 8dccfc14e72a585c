// Package xmlbridge implements the lossless lane (spec §4.5): when a frame
// sets FLAG_XML, a record's inner bytes are the UTF-8 of its XML
// serialization instead of the compact binary record body.
//
// No repository in the retrieved example pack does XML serialization, so
// this bridges to the standard library's encoding/xml rather than a pack
// dependency — see DESIGN.md. The mapping is generic (element per tag)
// since, unlike the binary lane, there is no dictionary-driven tag
// ordering requirement for the textual lane: it exists purely so a human
// or a foreign tool can read the record.
package xmlbridge

import (
	"encoding/xml"
	"fmt"

	"github.com/corvidlabs/biocodec/object"
)

// xmlRecord is the textual mirror of object.BioObject.
type xmlRecord struct {
	XMLName    xml.Name `xml:"BioObject"`
	Dictionary uint8    `xml:"dictionary,attr"`
	Code       uint16   `xml:"code,attr"`
	Version    uint16   `xml:"version,attr"`
	Name       string   `xml:"name,attr,omitempty"`
	Tags       []xmlTag `xml:"Tag"`
}

type xmlTag struct {
	Name       string      `xml:"name,attr"`
	Kind       string      `xml:"kind,attr"` // scalar | array | list
	Value      string      `xml:"value,attr,omitempty"`
	Items      []string    `xml:"Item"`
	Nested     *xmlRecord  `xml:"BioObject,omitempty"`
	NestedList []xmlRecord `xml:"Element,omitempty"`
}

// ToXML serializes rec to its lossless XML representation.
func ToXML(rec *object.BioObject) ([]byte, error) {
	x := toXMLRecord(rec)
	return xml.Marshal(x)
}

func toXMLRecord(rec *object.BioObject) xmlRecord {
	x := xmlRecord{
		Dictionary: rec.Dictionary,
		Code:       rec.Code,
		Version:    rec.Version,
		Name:       rec.Name,
	}

	rec.Range(func(key string, value any) bool {
		x.Tags = append(x.Tags, toXMLTag(key, value))
		return true
	})

	return x
}

func toXMLTag(name string, value any) xmlTag {
	switch v := value.(type) {
	case *object.BioObject:
		nested := toXMLRecord(v)
		return xmlTag{Name: name, Kind: "scalar", Nested: &nested}

	case []*object.BioObject:
		tag := xmlTag{Name: name, Kind: "array"}
		for _, elem := range v {
			tag.NestedList = append(tag.NestedList, toXMLRecord(elem))
		}
		return tag

	case object.List:
		tag := xmlTag{Name: name, Kind: "list"}
		for _, item := range v {
			if rec, ok := item.(*object.BioObject); ok {
				tag.NestedList = append(tag.NestedList, toXMLRecord(rec))
				continue
			}
			tag.Items = append(tag.Items, fmt.Sprintf("%v", item))
		}
		return tag

	default:
		return xmlTag{Name: name, Kind: "scalar", Value: fmt.Sprintf("%v", v)}
	}
}

// FromXML parses a lossless XML blob back into a generic BioObject. Nested
// BioObject values, []*object.BioObject arrays and object.List lists keep
// their structure; scalar values round-trip as strings since the textual
// lane carries no wire type tag of its own — callers matching an XML blob
// against a schema are expected to coerce. Any other slice value (such as
// []int32) is written by ToXML as one %v-formatted scalar string and reads
// back as that string, not as an array.
func FromXML(data []byte) (*object.BioObject, error) {
	var x xmlRecord
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("xmlbridge: parse failed: %w", err)
	}
	return fromXMLRecord(x), nil
}

func fromXMLRecord(x xmlRecord) *object.BioObject {
	rec := object.New(x.Dictionary, x.Code, x.Version, x.Name)
	for _, tag := range x.Tags {
		rec.Set(tag.Name, fromXMLTag(tag))
	}
	return rec
}

func fromXMLTag(tag xmlTag) any {
	switch tag.Kind {
	case "scalar":
		if tag.Nested != nil {
			return fromXMLRecord(*tag.Nested)
		}
		return tag.Value

	case "list":
		if len(tag.NestedList) > 0 {
			out := make(object.List, len(tag.NestedList))
			for i, nested := range tag.NestedList {
				out[i] = fromXMLRecord(nested)
			}
			return out
		}
		out := make(object.List, len(tag.Items))
		for i, item := range tag.Items {
			out[i] = item
		}
		return out

	default: // array
		if len(tag.NestedList) > 0 {
			out := make([]*object.BioObject, len(tag.NestedList))
			for i, nested := range tag.NestedList {
				out[i] = fromXMLRecord(nested)
			}
			return out
		}
		return tag.Items
	}
}
