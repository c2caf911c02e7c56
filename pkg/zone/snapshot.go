package zone

import (
	"encoding/json"
	"fmt"
	"os"
)

// Data is the flat, serializable snapshot of one zone. A list of Data is
// the only durable representation of a page's zone state; it round-trips
// through ApplyZoneData back into live heights, subject to the resolver's
// clamp and overflow rules.
type Data struct {
	ID          string  `json:"id" bson:"id"`
	Type        Type    `json:"type" bson:"type"`
	Height      float64 `json:"height" bson:"height"`
	Constraints Profile `json:"constraints" bson:"constraints"`
	Adjustable  bool    `json:"adjustable" bson:"adjustable"`
}

// GetZoneData captures the current zone state of the page as a snapshot
// list, in canonical zone order.
func (e *Engine) GetZoneData() []Data {
	page := e.Discover()
	snap := make([]Data, 0, len(page.Zones))
	for _, z := range page.Zones {
		snap = append(snap, Data{
			ID:          z.ID,
			Type:        z.Type,
			Height:      z.CurrentHeight,
			Constraints: z.Constraints,
			Adjustable:  z.Constraints.Adjustable,
		})
	}
	return snap
}

// ApplyZoneData replays a snapshot back onto the page through the height
// resolver. Entries are matched to live zones by id first, then by type
// among zones not already matched. Entries for non-adjustable zones and
// entries with no matching zone are skipped.
//
// A restored snapshot is not guaranteed to reproduce exactly: if the target
// page's other zones differ from when the snapshot was taken, the
// resolver's budget rules may shrink or reject individual heights.
func (e *Engine) ApplyZoneData(snap []Data) *Page {
	page := e.Discover()
	claimed := make(map[*Zone]bool, len(page.Zones))

	for _, d := range snap {
		z := e.matchZone(page, claimed, d)
		if z == nil {
			e.logger.Debug("snapshot entry has no matching zone", "id", d.ID, "type", d.Type)
			continue
		}
		claimed[z] = true
		if !d.Adjustable {
			continue
		}
		e.SetZoneHeight(page, z, d.Height)
	}
	return page
}

// matchZone resolves a snapshot entry to a live zone: by id, then by type
// among unclaimed zones.
func (e *Engine) matchZone(page *Page, claimed map[*Zone]bool, d Data) *Zone {
	if z := page.Zone(d.ID); z != nil && !claimed[z] {
		return z
	}
	for _, z := range page.Zones {
		if z.Type == d.Type && !claimed[z] {
			return z
		}
	}
	return nil
}

// =============================================================================
// Snapshot Serialization
// =============================================================================

// MarshalSnapshot serializes a snapshot to pretty-printed JSON bytes.
func MarshalSnapshot(snap []Data) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// UnmarshalSnapshot deserializes JSON bytes into a snapshot.
// Validates that every entry declares a zone type and a sane height.
func UnmarshalSnapshot(data []byte) ([]Data, error) {
	var snap []Data
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	for i, d := range snap {
		if d.Type == "" {
			return nil, fmt.Errorf("snapshot entry %d has no zone type", i)
		}
		if d.Height < 0 {
			return nil, fmt.Errorf("snapshot entry %d has negative height", i)
		}
	}
	return snap, nil
}

// WriteSnapshotFile writes a snapshot to a JSON file.
func WriteSnapshotFile(snap []Data, path string) error {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadSnapshotFile reads a snapshot from a JSON file.
func ReadSnapshotFile(path string) ([]Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalSnapshot(data)
}
