// Package dictionary implements the process-wide, read-only schema
// registry the record codec consults for every encode/decode: dictionaries
// keyed by a u8 id, objects keyed by code or name within a dictionary,
// dictionary-scoped "super tags", and enum objects keyed by code (spec
// §3's BioDictionary, §6.5's dictionary-registry interface).
//
// A Registry is built once at process startup by calling Register for
// every Dictionary and is thereafter only read; no method here takes a
// lock, matching the "build at startup, hand out immutable references"
// model spec §5 requires of the hot path.
package dictionary

import "github.com/corvidlabs/biocodec/format"

// BioTag is a schema descriptor for one (object, tag-name) pair.
type BioTag struct {
	Code       uint16
	Name       string
	Type       format.BioType
	IsArray    bool
	IsList     bool
	Encodable  bool
	EnumObj    *BioEnumObj // set when Type == format.TypeBioEnum
	NestedObj  *BioObj     // set when Type == format.TypeBioObject
}

// BioEnumValue is one named, ordinal-identified variant of an enum object.
type BioEnumValue struct {
	Ordinal int32
	Name    string
}

// BioEnumObj is a dictionary-scoped enum schema: ordinal <-> variant.
type BioEnumObj struct {
	Code       uint16
	byOrdinal  map[int32]BioEnumValue
	byName     map[string]BioEnumValue
}

// NewBioEnumObj creates an empty enum schema with the given code.
func NewBioEnumObj(code uint16) *BioEnumObj {
	return &BioEnumObj{
		Code:      code,
		byOrdinal: make(map[int32]BioEnumValue),
		byName:    make(map[string]BioEnumValue),
	}
}

// AddVariant registers one ordinal/name pair.
func (e *BioEnumObj) AddVariant(ordinal int32, name string) {
	v := BioEnumValue{Ordinal: ordinal, Name: name}
	e.byOrdinal[ordinal] = v
	e.byName[name] = v
}

// BioEnum looks up a variant by ordinal. A missing ordinal is not an
// error at this layer — the record codec treats it as "unknown enum" and
// drops the entry (spec §4.3) without returning an error.
func (e *BioEnumObj) BioEnum(ordinal int32) (BioEnumValue, bool) {
	v, ok := e.byOrdinal[ordinal]
	return v, ok
}

// BioEnumByName looks up a variant by name, used when constructing a
// record programmatically rather than decoding one.
func (e *BioEnumObj) BioEnumByName(name string) (BioEnumValue, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// BioObj is a schema descriptor for one object (record) type within a
// dictionary.
type BioObj struct {
	Dictionary uint8
	Code       uint16
	Version    uint16
	Name       string

	// IsLarge selects u32 (true) vs u16 (false) length prefixes for this
	// object's own nested blobs.
	IsLarge bool

	// NarrowTagCodes selects single-byte (true) vs u16 (false) tag codes
	// for this object's tags (spec §6.2's open question, resolved in
	// DESIGN.md: a per-object setting, default u16, explicit opt-in for u8).
	NarrowTagCodes bool

	tagsByCode map[uint16]*BioTag
	tagsByName map[string]*BioTag
}

// NewBioObj creates an empty object schema.
func NewBioObj(dictionary uint8, code, version uint16, name string) *BioObj {
	return &BioObj{
		Dictionary: dictionary,
		Code:       code,
		Version:    version,
		Name:       name,
		tagsByCode: make(map[uint16]*BioTag),
		tagsByName: make(map[string]*BioTag),
	}
}

// AddTag registers a tag on this object, indexed by both code and name.
func (o *BioObj) AddTag(tag *BioTag) {
	o.tagsByCode[tag.Code] = tag
	o.tagsByName[tag.Name] = tag
}

// TagByCode looks up a tag by its wire code.
func (o *BioObj) TagByCode(code uint16) (*BioTag, bool) {
	t, ok := o.tagsByCode[code]
	return t, ok
}

// TagByName looks up a tag by name, used when encoding a record built
// from Go values keyed by tag name.
func (o *BioObj) TagByName(name string) (*BioTag, bool) {
	t, ok := o.tagsByName[name]
	return t, ok
}

// Dictionary is a namespace of object schemas, super tags, and enum
// schemas, identified by a single-byte id.
type Dictionary struct {
	ID uint8

	objByCode map[uint16]*BioObj
	objByName map[string]*BioObj

	superTagsByCode map[uint16]*BioTag
	superTagsByName map[string]*BioTag

	enums map[uint16]*BioEnumObj
}

// NewDictionary creates an empty dictionary with the given id.
func NewDictionary(id uint8) *Dictionary {
	return &Dictionary{
		ID:              id,
		objByCode:       make(map[uint16]*BioObj),
		objByName:       make(map[string]*BioObj),
		superTagsByCode: make(map[uint16]*BioTag),
		superTagsByName: make(map[string]*BioTag),
		enums:           make(map[uint16]*BioEnumObj),
	}
}

// AddObject registers an object schema.
func (d *Dictionary) AddObject(obj *BioObj) {
	d.objByCode[obj.Code] = obj
	d.objByName[obj.Name] = obj
}

// AddSuperTag registers a dictionary-scoped tag usable by any object that
// doesn't define its own tag with that code/name.
func (d *Dictionary) AddSuperTag(tag *BioTag) {
	d.superTagsByCode[tag.Code] = tag
	d.superTagsByName[tag.Name] = tag
}

// AddEnum registers an enum schema.
func (d *Dictionary) AddEnum(enum *BioEnumObj) {
	d.enums[enum.Code] = enum
}

// ObjByCode looks up an object schema by code.
func (d *Dictionary) ObjByCode(code uint16) (*BioObj, bool) {
	o, ok := d.objByCode[code]
	return o, ok
}

// ObjByName looks up an object schema by name.
func (d *Dictionary) ObjByName(name string) (*BioObj, bool) {
	o, ok := d.objByName[name]
	return o, ok
}

// SuperTagByCode looks up a dictionary-scoped tag by code.
func (d *Dictionary) SuperTagByCode(code uint16) (*BioTag, bool) {
	t, ok := d.superTagsByCode[code]
	return t, ok
}

// SuperTagByName looks up a dictionary-scoped tag by name.
func (d *Dictionary) SuperTagByName(name string) (*BioTag, bool) {
	t, ok := d.superTagsByName[name]
	return t, ok
}

// EnumByCode looks up an enum schema by code.
func (d *Dictionary) EnumByCode(code uint16) (*BioEnumObj, bool) {
	e, ok := d.enums[code]
	return e, ok
}

// Registry is the process-wide set of dictionaries. Build one with
// NewRegistry and Register every Dictionary during init; treat it as
// read-only thereafter.
type Registry struct {
	dictionaries map[uint8]*Dictionary
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{dictionaries: make(map[uint8]*Dictionary)}
}

// Register adds d to the registry, keyed by d.ID.
func (r *Registry) Register(d *Dictionary) {
	r.dictionaries[d.ID] = d
}

// Dictionary looks up a dictionary by id.
func (r *Registry) Dictionary(id uint8) (*Dictionary, bool) {
	d, ok := r.dictionaries[id]
	return d, ok
}

// ObjByCode looks up an object schema within dictionary id.
func (r *Registry) ObjByCode(id uint8, code uint16) (*BioObj, bool) {
	d, ok := r.dictionaries[id]
	if !ok {
		return nil, false
	}
	return d.ObjByCode(code)
}

// ObjByName looks up an object schema within dictionary id.
func (r *Registry) ObjByName(id uint8, name string) (*BioObj, bool) {
	d, ok := r.dictionaries[id]
	if !ok {
		return nil, false
	}
	return d.ObjByName(name)
}

// SuperTagByCode looks up a dictionary-scoped tag by code.
func (r *Registry) SuperTagByCode(id uint8, code uint16) (*BioTag, bool) {
	d, ok := r.dictionaries[id]
	if !ok {
		return nil, false
	}
	return d.SuperTagByCode(code)
}

// SuperTagByName looks up a dictionary-scoped tag by name.
func (r *Registry) SuperTagByName(id uint8, name string) (*BioTag, bool) {
	d, ok := r.dictionaries[id]
	if !ok {
		return nil, false
	}
	return d.SuperTagByName(name)
}

// EnumByCode looks up an enum schema within dictionary id.
func (r *Registry) EnumByCode(id uint8, code uint16) (*BioEnumObj, bool) {
	d, ok := r.dictionaries[id]
	if !ok {
		return nil, false
	}
	return d.EnumByCode(code)
}
