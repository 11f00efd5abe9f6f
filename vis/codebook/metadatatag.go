package codebook

// MetadataTag is an immutable, typed LocalId metadata value (spec §3).
// Standard tags print as "prefix-value"; custom tags as "prefix~value".
type MetadataTag struct {
	Name     Name
	Value    string
	IsCustom bool
}

// NewMetadataTag constructs a tag directly. Prefer Codebook.CreateTag,
// which applies the per-codebook validation rules; this constructor is
// for call sites (the version converter) that already hold a validated
// value from a source LocalId and must preserve it verbatim.
func NewMetadataTag(name Name, value string, isCustom bool) MetadataTag {
	return MetadataTag{Name: name, Value: value, IsCustom: isCustom}
}

// String renders "prefix-value" or "prefix~value".
func (t MetadataTag) String() string {
	sep := byte('-')
	if t.IsCustom {
		sep = '~'
	}
	return t.Name.Prefix() + string(sep) + t.Value
}
