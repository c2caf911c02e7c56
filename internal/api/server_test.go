package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mlietz/pagezone/pkg/interact"
	"github.com/mlietz/pagezone/pkg/snapshot"
	"github.com/mlietz/pagezone/pkg/surface"
	"github.com/mlietz/pagezone/pkg/uistate"
	"github.com/mlietz/pagezone/pkg/zone"
)

func testServer(t *testing.T) (*Server, *interact.Controller) {
	t.Helper()

	s := surface.NewMemSurface()
	for _, spec := range []struct {
		kind string
		mm   float64
	}{
		{"header", 60}, {"content", 180}, {"footer", 40},
	} {
		s.Add(surface.NewMemRegion(spec.kind, surface.MMToPx(spec.mm)))
	}
	s.Reflow()

	ctl := interact.NewController(zone.New(s), interact.WithStateStore(uistate.NewMemStore()))
	if _, err := ctl.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return NewServer(ctl, WithSnapshotStore(snapshot.NewMemStore())), ctl
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(data)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func contentID(t *testing.T, ctl *interact.Controller) string {
	t.Helper()
	return ctl.Page().ZoneByType(zone.TypeContent).ID
}

func TestHealthz(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[map[string]string](t, rec); got["status"] != "ok" {
		t.Errorf("body = %v", got)
	}
}

func TestListZones(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/zones", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	zones := decode[[]zoneView](t, rec)
	if len(zones) != 3 {
		t.Fatalf("zone count = %d, want 3", len(zones))
	}
	if zones[0].Type != "header" || zones[1].Type != "content" || zones[2].Type != "footer" {
		t.Errorf("order = %s %s %s", zones[0].Type, zones[1].Type, zones[2].Type)
	}
	if zones[1].MinHeight != 150 || !zones[1].Adjustable {
		t.Errorf("content view = %+v", zones[1])
	}
}

func TestSetHeight(t *testing.T) {
	srv, ctl := testServer(t)
	id := contentID(t, ctl)

	rec := doJSON(t, srv, http.MethodPost, "/zones/"+id+"/height", heightRequest{Height: 195})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decode[struct {
		Committed bool     `json:"committed"`
		Zone      zoneView `json:"zone"`
	}](t, rec)
	if !resp.Committed || resp.Zone.Height != 195 {
		t.Errorf("response = %+v", resp)
	}
}

func TestSetHeightUnknownZone(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/zones/nope/height", heightRequest{Height: 195})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if got := decode[errorResponse](t, rec); got.Code != "ZONE_NOT_FOUND" {
		t.Errorf("error = %+v", got)
	}
}

func TestAdjustRequiresEditMode(t *testing.T) {
	srv, ctl := testServer(t)
	id := contentID(t, ctl)

	rec := doJSON(t, srv, http.MethodPost, "/zones/"+id+"/adjust", adjustRequest{Delta: 10})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	doJSON(t, srv, http.MethodPut, "/editmode", editModeRequest{Enabled: true})
	rec = doJSON(t, srv, http.MethodPost, "/zones/"+id+"/adjust", adjustRequest{Delta: 10})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decode[struct {
		Committed bool     `json:"committed"`
		Zone      zoneView `json:"zone"`
	}](t, rec)
	if !resp.Committed || resp.Zone.Height != 190 {
		t.Errorf("response = %+v", resp)
	}
}

func TestResetZone(t *testing.T) {
	srv, ctl := testServer(t)
	doJSON(t, srv, http.MethodPut, "/editmode", editModeRequest{Enabled: true})

	footer := ctl.Page().ZoneByType(zone.TypeFooter)
	rec := doJSON(t, srv, http.MethodPost, "/zones/"+footer.ID+"/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if footer.CurrentHeight != 50 {
		t.Errorf("footer height = %v, want 50", footer.CurrentHeight)
	}
}

func TestValidateEndpoint(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/layout/validate", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decode[zone.ValidationResult](t, rec); !got.Valid {
		t.Errorf("result = %+v", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	srv, ctl := testServer(t)
	id := contentID(t, ctl)

	doJSON(t, srv, http.MethodPost, "/zones/"+id+"/height", heightRequest{Height: 195})

	rec := doJSON(t, srv, http.MethodGet, "/snapshot", nil)
	snap := decode[[]zone.Data](t, rec)
	if len(snap) != 3 {
		t.Fatalf("snapshot entries = %d", len(snap))
	}

	doJSON(t, srv, http.MethodPost, "/zones/"+id+"/height", heightRequest{Height: 160})
	rec = doJSON(t, srv, http.MethodPost, "/snapshot", snap)
	if rec.Code != http.StatusOK {
		t.Fatalf("apply status = %d", rec.Code)
	}
	if h := ctl.Page().ZoneByType(zone.TypeContent).CurrentHeight; h != 195 {
		t.Errorf("restored height = %v, want 195", h)
	}
}

func TestStoredSnapshots(t *testing.T) {
	srv, ctl := testServer(t)
	id := contentID(t, ctl)

	doJSON(t, srv, http.MethodPost, "/zones/"+id+"/height", heightRequest{Height: 195})
	if rec := doJSON(t, srv, http.MethodPut, "/snapshots/draft", nil); rec.Code != http.StatusCreated {
		t.Fatalf("save status = %d", rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/snapshots/", nil)
	if names := decode[[]string](t, rec); len(names) != 1 || names[0] != "draft" {
		t.Errorf("names = %v", names)
	}

	doJSON(t, srv, http.MethodPost, "/zones/"+id+"/height", heightRequest{Height: 160})
	if rec := doJSON(t, srv, http.MethodPost, "/snapshots/draft/restore", nil); rec.Code != http.StatusOK {
		t.Fatalf("restore status = %d", rec.Code)
	}
	if h := ctl.Page().ZoneByType(zone.TypeContent).CurrentHeight; h != 195 {
		t.Errorf("restored height = %v, want 195", h)
	}

	if rec := doJSON(t, srv, http.MethodDelete, "/snapshots/draft", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := doJSON(t, srv, http.MethodGet, "/snapshots/draft", nil); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d", rec.Code)
	}
}

func TestRenderSVG(t *testing.T) {
	srv, _ := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/render.svg", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not svg")
	}
}
