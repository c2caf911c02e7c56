package zone

import (
	"github.com/BurntSushi/toml"

	"github.com/mlietz/pagezone/pkg/errors"
)

// tableFile is the on-disk shape of a constraint-table override:
//
//	[zones.content]
//	adjustable = true
//	min_height = 150.0
//	max_height = 220.0
//	overflow = "auto"
//	role = "flex"
type tableFile struct {
	Zones map[string]Profile `toml:"zones"`
}

// LoadTable reads a constraint table from a TOML file. Profiles in the
// file override the built-in defaults per zone type; unknown types in the
// file become new table entries (and thus new valid zone types).
func LoadTable(path string) (Table, error) {
	var f tableFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "load constraint table %s", path)
	}

	t := DefaultTable()
	for kind, p := range f.Zones {
		t[Type(kind)] = p
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
