package codebook

// DefaultGroup is the sentinel group name a standard value belongs to
// when the reference data does not assign it an explicit group (spec
// §4.C: "the sentinel group DEFAULT_GROUP which may repeat").
const DefaultGroup = "DEFAULT_GROUP"

// StandardValue is one entry of a codebook's reference-data value list:
// a value string and the group it belongs to (DefaultGroup if none).
type StandardValue struct {
	Value string
	Group string
}

// Codebook is one VIS codebook (spec §3): a set of standard values, the
// set of group names those values partition into, and (value -> group).
type Codebook struct {
	Name           Name
	standardValues map[string]struct{}
	valueGroup     map[string]string
	groupOrder     []string
	groupIndex     map[string]int
}

// NewCodebook builds a Codebook from its loaded standard-value list. The
// group order used by Position's composite-ordering rule is the order
// distinct groups are first encountered in values.
func NewCodebook(name Name, values []StandardValue) *Codebook {
	cb := &Codebook{
		Name:           name,
		standardValues: make(map[string]struct{}, len(values)),
		valueGroup:     make(map[string]string, len(values)),
		groupIndex:     make(map[string]int),
	}
	for _, v := range values {
		group := v.Group
		if group == "" {
			group = DefaultGroup
		}
		cb.standardValues[v.Value] = struct{}{}
		cb.valueGroup[v.Value] = group
		if _, ok := cb.groupIndex[group]; !ok {
			cb.groupIndex[group] = len(cb.groupOrder)
			cb.groupOrder = append(cb.groupOrder, group)
		}
	}
	return cb
}

// HasStandardValue reports membership. For the Position codebook, any
// integer string is also considered a standard value (spec §4.C).
func (c *Codebook) HasStandardValue(value string) bool {
	if c.Name == Position && isIntegerString(value) {
		return true
	}
	_, ok := c.standardValues[value]
	return ok
}

// HasGroup reports membership in the set of group names.
func (c *Codebook) HasGroup(group string) bool {
	_, ok := c.groupIndex[group]
	return ok
}

// StandardValues returns every standard value, for "did you mean"
// suggestions on unknown metadata tag values.
func (c *Codebook) StandardValues() []string {
	out := make([]string, 0, len(c.standardValues))
	for v := range c.standardValues {
		out = append(out, v)
	}
	return out
}

// groupOf returns the group a value belongs to, defaulting to
// DefaultGroup for values the codebook does not recognize (custom
// composite parts are still assigned a group for ordering purposes).
func (c *Codebook) groupOf(value string) string {
	if g, ok := c.valueGroup[value]; ok {
		return g
	}
	return DefaultGroup
}

func (c *Codebook) groupRank(group string) int {
	if idx, ok := c.groupIndex[group]; ok {
		return idx
	}
	return len(c.groupOrder)
}

// CreateTag validates value against this codebook's rules (spec §4.C)
// and returns the resulting MetadataTag. Position uses validatePosition;
// Detail requires ISO-unreserved characters; all others accept a
// standard value as-is or any non-empty ISO-unreserved string as custom.
func (c *Codebook) CreateTag(value string) (MetadataTag, bool) {
	if value == "" {
		return MetadataTag{}, false
	}

	switch c.Name {
	case Position:
		switch c.ValidatePosition(value) {
		case PositionValid:
			return NewMetadataTag(c.Name, value, false), true
		case PositionCustom:
			return NewMetadataTag(c.Name, value, true), true
		default:
			return MetadataTag{}, false
		}
	case Detail:
		if !isISOUnreserved(value) {
			return MetadataTag{}, false
		}
		return NewMetadataTag(c.Name, value, !c.HasStandardValue(value)), true
	default:
		if c.HasStandardValue(value) {
			return NewMetadataTag(c.Name, value, false), true
		}
		if !isISOUnreserved(value) {
			return MetadataTag{}, false
		}
		return NewMetadataTag(c.Name, value, true), true
	}
}
