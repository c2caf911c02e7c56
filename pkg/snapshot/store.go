// Package snapshot provides named, durable storage for zone snapshots.
//
// A zone snapshot (a []zone.Data) is the only durable representation of a
// page's zone state. This package wraps it with a name and timestamp and
// stores it behind one Store interface with several backends:
//   - memory: process-local storage for development/testing
//   - file: JSON files in a config directory, for CLI use
//   - redis: Redis-backed storage for shared deployments
//   - mongo: MongoDB-backed storage for shared deployments
//
// All backends report through the snapshot-store observability hooks, so a
// frontend can surface save/load activity without knowing the backend.
package snapshot

import (
	"context"
	"strings"
	"time"

	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/observability"
	"github.com/mlietz/pagezone/pkg/zone"
)

// Snapshot is a named zone snapshot with its capture time.
type Snapshot struct {
	Name    string      `json:"name" bson:"name"`
	Zones   []zone.Data `json:"zones" bson:"zones"`
	SavedAt time.Time   `json:"saved_at" bson:"saved_at"`
}

// New wraps a zone snapshot under a name, stamped with the current time.
func New(name string, zones []zone.Data) *Snapshot {
	return &Snapshot{Name: name, Zones: zones, SavedAt: time.Now().UTC()}
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Save stores a snapshot under its name, replacing any previous one.
	Save(ctx context.Context, snap *Snapshot) error

	// Load retrieves a snapshot by name.
	// Returns an error with code SNAPSHOT_NOT_FOUND when absent.
	Load(ctx context.Context, name string) (*Snapshot, error)

	// List returns the stored snapshot names, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes a snapshot. Deleting an absent name is not an error.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}

// ValidateName rejects names that are empty or unsafe as storage keys.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "snapshot name is empty")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return errors.New(errors.ErrCodeInvalidInput, "invalid snapshot name %q", name)
	}
	return nil
}

// notFound builds the canonical missing-snapshot error.
func notFound(name string) error {
	return errors.New(errors.ErrCodeSnapshotNotFound, "no snapshot named %q", name)
}

// observeSave reports a save through the store hooks.
func observeSave(ctx context.Context, backend string, snap *Snapshot, err error) {
	zones := 0
	if snap != nil {
		zones = len(snap.Zones)
	}
	name := ""
	if snap != nil {
		name = snap.Name
	}
	observability.Stores().OnSnapshotSave(ctx, backend, name, zones, err)
}

// observeLoad reports a load through the store hooks.
func observeLoad(ctx context.Context, backend, name string, err error) {
	observability.Stores().OnSnapshotLoad(ctx, backend, name, err)
}
