// Package codebook implements the VIS codebook set (spec §4.C): named
// enumerations of standard metadata values, plus the MetadataTag values
// they mint.
package codebook

// Name indexes the fixed-size Codebooks array (spec §3).
type Name int

const (
	Quantity Name = iota
	Content
	Calculation
	State
	Command
	Type
	FunctionalServices
	MaintenanceCategory
	ActivityType
	Position
	Detail

	nameCount
)

var prefixes = [nameCount]string{
	Quantity:            "qty",
	Content:             "cnt",
	Calculation:         "calc",
	State:               "state",
	Command:             "cmd",
	Type:                "type",
	FunctionalServices:  "funct.svc",
	MaintenanceCategory: "maint.cat",
	ActivityType:        "act.type",
	Position:            "pos",
	Detail:              "detail",
}

var fromPrefixMap = func() map[string]Name {
	m := make(map[string]Name, nameCount)
	for n, p := range prefixes {
		m[p] = Name(n)
	}
	return m
}()

// Prefix returns the short LocalId/path prefix for this codebook name.
func (n Name) Prefix() string { return prefixes[n] }

func (n Name) String() string {
	if n < 0 || n >= nameCount {
		return "unknown"
	}
	return prefixes[n]
}

// NameFromPrefix resolves a LocalId tag prefix (e.g. "qty") back to its
// CodebookName.
func NameFromPrefix(prefix string) (Name, bool) {
	n, ok := fromPrefixMap[prefix]
	return n, ok
}

// AllPrefixes returns every LocalId tag prefix, for "did you mean"
// suggestions on unknown-prefix errors.
func AllPrefixes() []string {
	out := make([]string, len(prefixes))
	copy(out, prefixes[:])
	return out
}

// AllNames returns every CodebookName in declaration order: Quantity,
// Content, Calculation, State, Command, Type, then the three non-LocalId
// codebooks (FunctionalServices, MaintenanceCategory, ActivityType), then
// Position and Detail. ContentNames gives the LocalId print order.
func AllNames() []Name {
	return []Name{
		Quantity, Content, Calculation, State, Command, Type,
		FunctionalServices, MaintenanceCategory, ActivityType, Position, Detail,
	}
}

// ContentNames returns the eight codebooks eligible as LocalId metadata
// tags, in canonical print order (spec §3, §4.H).
func ContentNames() []Name {
	return []Name{Quantity, Content, Calculation, State, Command, Type, Position, Detail}
}

// IsContentCodebook reports whether n may appear as a LocalId metadata tag.
func IsContentCodebook(n Name) bool {
	for _, c := range ContentNames() {
		if c == n {
			return true
		}
	}
	return false
}
