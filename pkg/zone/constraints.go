package zone

import (
	"math"

	"github.com/mlietz/pagezone/pkg/errors"
)

// PageHeightBudget is the fixed maximum total height in millimeters that
// all zones together must not exceed. It matches A4 portrait.
const PageHeightBudget = 297.0

// Type identifies a zone's declared role on the page. The set is closed by
// the constraint table in use, not by the language: adding a table entry
// introduces a new type.
type Type string

// Built-in zone types.
const (
	TypeHeader  Type = "header"
	TypeContent Type = "content"
	TypeFooter  Type = "footer"
)

// Role describes how a zone participates in vertical layout.
type Role string

const (
	// RoleFixed zones occupy exactly their current height.
	RoleFixed Role = "fixed"

	// RoleFlex zones absorb remaining page height; pinning their height
	// requires setting both min and max presentation hints.
	RoleFlex Role = "flex"
)

// Overflow is the presentation policy for content exceeding a zone's
// height. It is carried on the profile for styling; the resolver does not
// enforce it.
type Overflow string

const (
	OverflowHidden  Overflow = "hidden"
	OverflowAuto    Overflow = "auto"
	OverflowVisible Overflow = "visible"
	OverflowScroll  Overflow = "scroll"
)

// Profile is the static constraint profile shared by all zones of a type.
// Bounds are in millimeters; a zero bound means unbounded on that side.
type Profile struct {
	Adjustable bool     `json:"adjustable" bson:"adjustable" toml:"adjustable"`
	MinHeight  float64  `json:"min_height,omitempty" bson:"min_height,omitempty" toml:"min_height"`
	MaxHeight  float64  `json:"max_height,omitempty" bson:"max_height,omitempty" toml:"max_height"`
	Overflow   Overflow `json:"overflow" bson:"overflow" toml:"overflow"`
	Role       Role     `json:"role" bson:"role" toml:"role"`
}

// Clamp forces a requested height in millimeters into the profile's
// bounds. A missing minimum is treated as 0, a missing maximum as +Inf.
func (p Profile) Clamp(mm float64) float64 {
	upper := p.MaxHeight
	if upper <= 0 {
		upper = math.Inf(1)
	}
	return math.Min(math.Max(mm, p.MinHeight), upper)
}

// DefaultHeight returns the type-specific reset height: flexible zones
// fall back to their minimum, fixed-role zones to the midpoint of their
// bounds.
func (p Profile) DefaultHeight() float64 {
	if p.Role == RoleFlex {
		return p.MinHeight
	}
	return (p.MinHeight + p.MaxHeight) / 2
}

// Table is an immutable mapping from zone type to constraint profile. An
// engine owns its table; callers should treat a Table as a value and use
// Clone before mutating one.
type Table map[Type]Profile

// DefaultTable returns the built-in constraint table.
func DefaultTable() Table {
	return Table{
		TypeHeader: {
			Adjustable: false,
			Overflow:   OverflowHidden,
			Role:       RoleFixed,
		},
		TypeContent: {
			Adjustable: true,
			MinHeight:  150,
			MaxHeight:  220,
			Overflow:   OverflowAuto,
			Role:       RoleFlex,
		},
		TypeFooter: {
			Adjustable: true,
			MinHeight:  20,
			MaxHeight:  80,
			Overflow:   OverflowHidden,
			Role:       RoleFixed,
		},
	}
}

// Profile resolves a zone type against the table.
func (t Table) Profile(zt Type) (Profile, bool) {
	p, ok := t[zt]
	return p, ok
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Validate checks the table for unusable profiles.
func (t Table) Validate() error {
	for typ, p := range t {
		if typ == "" {
			return errors.New(errors.ErrCodeInvalidProfile, "profile with empty zone type")
		}
		if p.MinHeight < 0 || p.MaxHeight < 0 {
			return errors.New(errors.ErrCodeInvalidProfile, "%s: negative height bound", typ)
		}
		if p.MaxHeight > 0 && p.MinHeight > p.MaxHeight {
			return errors.New(errors.ErrCodeInvalidProfile, "%s: min height %.1f exceeds max height %.1f", typ, p.MinHeight, p.MaxHeight)
		}
		switch p.Role {
		case RoleFixed, RoleFlex:
		default:
			return errors.New(errors.ErrCodeInvalidProfile, "%s: unknown layout role %q", typ, p.Role)
		}
		switch p.Overflow {
		case OverflowHidden, OverflowAuto, OverflowVisible, OverflowScroll:
		default:
			return errors.New(errors.ErrCodeInvalidProfile, "%s: unknown overflow policy %q", typ, p.Overflow)
		}
	}
	return nil
}

// canonicalOrder is the fixed vertical position of each built-in type.
// Types absent from the map (future table additions) sort last, stable
// between themselves.
var canonicalOrder = map[Type]int{
	TypeHeader:  0,
	TypeContent: 1,
	TypeFooter:  2,
}

// orderOf returns the canonical sort key for a zone type.
func orderOf(t Type) int {
	if o, ok := canonicalOrder[t]; ok {
		return o
	}
	return len(canonicalOrder)
}
