// Package object defines BioObject, the in-memory record container the
// codec reads from and writes into. It is deliberately a thin, ordered
// key/value structure — schema validation, dictionary lookup, and wire
// encoding all live in the record and dictionary packages; object only
// owns storage and iteration order (spec §3's insistence that encode
// follows "insertion order").
package object

// List marks a tag's value as a list container rather than a fixed-size
// array. On the wire, arrays and lists share an identical encoding except
// for the container discriminator byte, but a Go value must carry its own
// container kind so the decoder can reconstruct the same one it was given
// (spec invariant: "arrays decode to arrays, lists decode to lists — never
// swapped").
type List []any

// entry is one ordered key/value pair.
type entry struct {
	key   string
	value any
}

// BioObject is a record: a schema identity (Dictionary/Code/Version/Name)
// plus an ordered tag-name to value mapping. A record with Code == 0 and
// Version == 0 is a properties record and bypasses dictionary validation.
type BioObject struct {
	Dictionary uint8
	Code       uint16
	Version    uint16
	Name       string

	entries []entry
	index   map[string]int
}

// New creates an empty BioObject carrying the given schema identity.
func New(dictionary uint8, code, version uint16, name string) *BioObject {
	return &BioObject{
		Dictionary: dictionary,
		Code:       code,
		Version:    version,
		Name:       name,
		index:      make(map[string]int),
	}
}

// NewProperties creates an empty schema-less (code=0, version=0) record.
func NewProperties() *BioObject {
	return New(0, 0, 0, "")
}

// IsProperties reports whether this record bypasses dictionary validation.
func (o *BioObject) IsProperties() bool {
	return o.Code == 0 && o.Version == 0
}

// Set stores value under key, appending a new entry if key is not already
// present and overwriting in place (preserving original position) if it is.
func (o *BioObject) Set(key string, value any) {
	if o.index == nil {
		o.index = make(map[string]int)
	}

	if i, ok := o.index[key]; ok {
		o.entries[i].value = value
		return
	}

	o.index[key] = len(o.entries)
	o.entries = append(o.entries, entry{key: key, value: value})
}

// Get returns the value stored under key, if any.
func (o *BioObject) Get(key string) (any, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.entries[i].value, true
}

// Len returns the number of entries.
func (o *BioObject) Len() int { return len(o.entries) }

// Keys returns the entry keys in insertion order.
func (o *BioObject) Keys() []string {
	keys := make([]string, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Range calls fn for every entry in insertion order, stopping early if fn
// returns false.
func (o *BioObject) Range(fn func(key string, value any) bool) {
	for _, e := range o.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}
