package api

import (
	"context"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/state"
	"ShapeBoard/internal/surface"

	"gonum.org/v1/gonum/floats/scalar"
)

func newTestServer(t *testing.T) (*Server, *surface.Dispatcher) {
	t.Helper()
	board := surface.NewDispatcher(surface.New(state.NewSession(state.DefaultToolConfig())))
	t.Cleanup(board.Close)
	return New(board, &config.Config{Width: 200, Height: 100}), board
}

func send(t *testing.T, s *Server, method, path, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status code = %d, want %d", resp.StatusCode, want)
	}
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	resp := send(t, s, http.MethodGet, "/health/live", "")
	expectStatus(t, resp, http.StatusOK)
	if got := decode[map[string]string](t, resp)["status"]; got != "alive" {
		t.Errorf("status = %q, want alive", got)
	}
}

func TestDrawRectangle(t *testing.T) {
	s, _ := newTestServer(t)
	expectStatus(t, send(t, s, http.MethodPatch, "/api/v1/config", `{"shape":"rectangle"}`), http.StatusOK)
	expectStatus(t, send(t, s, http.MethodPost, "/api/v1/pointer/down", `{"x":10,"y":10}`), http.StatusOK)

	resp := send(t, s, http.MethodPost, "/api/v1/pointer/up", `{"x":110,"y":60}`)
	expectStatus(t, resp, http.StatusOK)
	got := decode[EventResponse](t, resp)
	if got.Shape == nil {
		t.Fatal("pointer/up returned no shape")
	}
	if got.Shape.Kind != "Rectangle" {
		t.Errorf("kind = %q, want Rectangle", got.Shape.Kind)
	}
	if w, h := got.Shape.Geometry["width"], got.Shape.Geometry["height"]; w != 100 || h != 50 {
		t.Errorf("size = %vx%v, want 100x50", w, h)
	}
	if !scalar.EqualWithinAbs(got.Shape.Area, 5000, 1e-9) || !scalar.EqualWithinAbs(got.Shape.Perimeter, 300, 1e-9) {
		t.Errorf("area, perimeter = %v, %v; want 5000, 300", got.Shape.Area, got.Shape.Perimeter)
	}

	shapes := decode[map[string][]ShapeDTO](t, send(t, s, http.MethodGet, "/api/v1/shapes", ""))["shapes"]
	if len(shapes) != 1 || shapes[0].ID != got.Shape.ID {
		t.Errorf("shapes = %+v, want the committed rectangle", shapes)
	}
}

func TestInvalidGestureIsReportedInStatus(t *testing.T) {
	s, _ := newTestServer(t)
	send(t, s, http.MethodPost, "/api/v1/pointer/down", `{"x":0,"y":10}`)

	resp := send(t, s, http.MethodPost, "/api/v1/pointer/up", `{"x":50,"y":50}`)
	expectStatus(t, resp, http.StatusOK)
	got := decode[EventResponse](t, resp)
	if got.Shape != nil {
		t.Errorf("shape = %+v, want none", got.Shape)
	}
	if !strings.HasSuffix(got.Status, "Invalid dimensions for Circle") {
		t.Errorf("status = %q, want invalid dimensions message", got.Status)
	}
}

func TestPointerMoveAndClick(t *testing.T) {
	s, _ := newTestServer(t)
	got := decode[EventResponse](t, send(t, s, http.MethodPost, "/api/v1/pointer/move", `{"x":12,"y":7.5}`))
	if got.Status != "Mouse position = [12.0, 7.5]" {
		t.Errorf("status = %q", got.Status)
	}

	send(t, s, http.MethodPost, "/api/v1/pointer/down", `{"x":50,"y":100}`)
	send(t, s, http.MethodPost, "/api/v1/pointer/up", `{"x":150,"y":100}`)
	got = decode[EventResponse](t, send(t, s, http.MethodPost, "/api/v1/pointer/click", `{"x":100,"y":100}`))
	if got.Shape == nil || got.Shape.Kind != "Circle" {
		t.Fatalf("click shape = %+v, want the circle", got.Shape)
	}
	if !strings.HasSuffix(got.Status, "Shape Area: 7853.98\nShape Perimeter: 314.16") {
		t.Errorf("status = %q, want area and perimeter", got.Status)
	}
}

func TestBadPointerRequests(t *testing.T) {
	s, _ := newTestServer(t)
	for _, body := range []string{`{"x":`, `{"x":10}`, ``} {
		resp := send(t, s, http.MethodPost, "/api/v1/pointer/down", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: status code = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestPatchConfig(t *testing.T) {
	s, _ := newTestServer(t)
	resp := send(t, s, http.MethodPatch, "/api/v1/config",
		`{"shape":"Oval","fill_color":"#ff0000","filled":false,"stroke_width":6,"background":"Light Gray"}`)
	expectStatus(t, resp, http.StatusOK)
	got := decode[ConfigDTO](t, resp)
	want := ConfigDTO{
		Shape:       "Oval",
		FillColor:   "#ff0000ff",
		StrokeColor: "#000000ff",
		Filled:      false,
		StrokeWidth: 6,
		Background:  "Light Gray",
	}
	if got != want {
		t.Errorf("config = %+v, want %+v", got, want)
	}
	if again := decode[ConfigDTO](t, send(t, s, http.MethodGet, "/api/v1/config", "")); again != want {
		t.Errorf("GET config = %+v, want %+v", again, want)
	}
}

func TestPatchConfigRejectsInvalidValues(t *testing.T) {
	s, _ := newTestServer(t)
	for _, body := range []string{
		`{"shape":"triangle"}`,
		`{"fill_color":"red"}`,
		`{"stroke_color":"#12345"}`,
		`{"stroke_width":0}`,
		`{"stroke_width":-2}`,
		`{"background":"purple"}`,
		`not json`,
	} {
		resp := send(t, s, http.MethodPatch, "/api/v1/config", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %s: status code = %d, want 400", body, resp.StatusCode)
		}
	}
	if got := decode[ConfigDTO](t, send(t, s, http.MethodGet, "/api/v1/config", "")); got.StrokeWidth != 4 || got.Shape != "Circle" {
		t.Errorf("config changed by rejected updates: %+v", got)
	}
}

func TestUndoAndClear(t *testing.T) {
	s, _ := newTestServer(t)
	got := decode[EventResponse](t, send(t, s, http.MethodPost, "/api/v1/undo", ""))
	if got.Shape != nil || !strings.HasSuffix(got.Status, "Nothing to undo") {
		t.Errorf("undo on empty board = %+v", got)
	}

	for i := 0; i < 2; i++ {
		send(t, s, http.MethodPost, "/api/v1/pointer/down", `{"x":10,"y":10}`)
		send(t, s, http.MethodPost, "/api/v1/pointer/up", `{"x":40,"y":40}`)
	}
	got = decode[EventResponse](t, send(t, s, http.MethodPost, "/api/v1/undo", ""))
	if got.Shape == nil {
		t.Fatal("undo returned no shape")
	}
	expectStatus(t, send(t, s, http.MethodPost, "/api/v1/clear", ""), http.StatusOK)
	if shapes := decode[map[string][]ShapeDTO](t, send(t, s, http.MethodGet, "/api/v1/shapes", ""))["shapes"]; len(shapes) != 0 {
		t.Errorf("shapes after clear = %d, want 0", len(shapes))
	}
}

func TestCanvasPNG(t *testing.T) {
	s, _ := newTestServer(t)
	send(t, s, http.MethodPost, "/api/v1/pointer/down", `{"x":10,"y":10}`)
	send(t, s, http.MethodPost, "/api/v1/pointer/up", `{"x":60,"y":60}`)

	resp := send(t, s, http.MethodGet, "/api/v1/canvas.png", "")
	expectStatus(t, resp, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("canvas bounds = %v, want 200x100", b)
	}
}

func TestExit(t *testing.T) {
	s, board := newTestServer(t)
	exited := make(chan struct{}, 1)
	if err := board.Do(context.Background(), func(sf *surface.Surface) {
		sf.OnExit = func() { exited <- struct{}{} }
	}); err != nil {
		t.Fatal(err)
	}

	expectStatus(t, send(t, s, http.MethodPost, "/api/v1/exit", ""), http.StatusOK)
	select {
	case <-exited:
	default:
		t.Error("exit did not reach the board")
	}
}

func TestClosedBoard(t *testing.T) {
	s, board := newTestServer(t)
	board.Close()
	expectStatus(t, send(t, s, http.MethodGet, "/api/v1/shapes", ""), http.StatusServiceUnavailable)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#000", "#000000ff", false},
		{"#FF0000FF", "#ff0000ff", false},
		{" 00ff00 ", "#00ff00ff", false},
		{"#fff0", "#ffffff00", false},
		{"#ggg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		c, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && hexColor(c) != tt.want {
			t.Errorf("parseHexColor(%q) = %s, want %s", tt.in, hexColor(c), tt.want)
		}
	}
}
