package surface

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// =============================================================================
// Page Documents - Serialized Surface State
// =============================================================================

// Document is the JSON representation of a page's marked regions. The CLI
// loads a page document into a MemSurface, runs the engine against it, and
// writes the mutated presentation state back out.
type Document struct {
	// Name is an optional page label used in logs and snapshots.
	Name string `json:"name,omitempty"`

	// Regions are the marked zone regions in document order.
	Regions []DocumentRegion `json:"regions"`
}

// DocumentRegion is one serialized region.
type DocumentRegion struct {
	ID       string            `json:"id,omitempty"`
	Kind     string            `json:"kind"`
	HeightPx float64           `json:"height_px"`
	TopPx    float64           `json:"top_px,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Classes  []string          `json:"classes,omitempty"`
}

// Surface materializes the document as an in-memory surface.
func (d Document) Surface() *MemSurface {
	s := NewMemSurface()
	for _, dr := range d.Regions {
		r := NewMemRegion(dr.Kind, dr.HeightPx)
		r.SetID(dr.ID)
		r.SetTopPx(dr.TopPx)
		for k, v := range dr.Attrs {
			r.SetAttr(k, v)
		}
		for _, c := range dr.Classes {
			r.AddClass(c)
		}
		s.Add(r)
	}
	return s
}

// Snapshot captures the surface's current state as a document.
func (s *MemSurface) Snapshot(name string) Document {
	doc := Document{Name: name}
	for _, r := range s.regions {
		dr := DocumentRegion{
			ID:       r.id,
			Kind:     r.kind,
			HeightPx: r.heightPx,
			TopPx:    r.topPx,
		}
		if len(r.attrs) > 0 {
			dr.Attrs = make(map[string]string, len(r.attrs))
			for k, v := range r.attrs {
				dr.Attrs[k] = v
			}
		}
		if len(r.classes) > 0 {
			dr.Classes = make([]string, 0, len(r.classes))
			for c := range r.classes {
				dr.Classes = append(dr.Classes, c)
			}
			sort.Strings(dr.Classes)
		}
		doc.Regions = append(doc.Regions, dr)
	}
	return doc
}

// MarshalDocument serializes a Document to pretty-printed JSON bytes.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument deserializes JSON bytes into a Document.
// Validates that every region declares a zone kind.
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal page document: %w", err)
	}
	for i, r := range d.Regions {
		if r.Kind == "" {
			return Document{}, fmt.Errorf("page document region %d has no kind", i)
		}
	}
	return d, nil
}

// WriteDocumentFile writes a Document to a JSON file.
func WriteDocumentFile(d Document, path string) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadDocumentFile reads a Document from a JSON file.
func ReadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalDocument(data)
}
