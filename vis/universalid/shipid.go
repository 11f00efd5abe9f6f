package universalid

import "strings"

// ShipID is a tagged union identifying the vessel a UniversalId belongs
// to (supplements spec §4.K): either a validated ImoNumber or an opaque
// other-id string for vessels without an assigned IMO number.
type ShipID struct {
	imo     ImoNumber
	other   string
	isImo   bool
	isOther bool
}

// NewShipIDFromImo wraps an ImoNumber as a ShipID.
func NewShipIDFromImo(imo ImoNumber) ShipID {
	return ShipID{imo: imo, isImo: true}
}

// NewShipIDFromOther wraps an opaque, non-IMO ship identifier.
func NewShipIDFromOther(id string) ShipID {
	return ShipID{other: id, isOther: true}
}

// IsZero reports whether this ShipID carries no value.
func (s ShipID) IsZero() bool { return !s.isImo && !s.isOther }

// ImoNumber returns the wrapped ImoNumber, if this ShipID holds one.
func (s ShipID) ImoNumber() (ImoNumber, bool) { return s.imo, s.isImo }

// OtherID returns the wrapped opaque identifier, if this ShipID holds one.
func (s ShipID) OtherID() (string, bool) { return s.other, s.isOther }

// String renders the IMO form ("IMO<number>") or the opaque id verbatim.
func (s ShipID) String() string {
	switch {
	case s.isImo:
		return s.imo.String()
	case s.isOther:
		return s.other
	default:
		return ""
	}
}

// ParseShipID parses a ship-id segment, preferring a valid IMO number
// and falling back to an opaque other-id (supplements spec §4.K).
func ParseShipID(segment string) ShipID {
	if strings.HasPrefix(strings.ToUpper(segment), "IMO") {
		if imo, err := ParseImoNumber(segment); err == nil {
			return NewShipIDFromImo(imo)
		}
	}
	return NewShipIDFromOther(segment)
}
