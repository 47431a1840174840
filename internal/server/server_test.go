package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	ts := httptest.NewServer(New(logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected an X-Request-Id header")
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("body: got %v", body)
	}
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestSolve(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		mode       string
		wantStates []int
		wantT      float64
	}{
		{"floor", "floor", []int{0, 1}, 0.25},
		{"ceiling", "ceiling", []int{1, 0}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/v1/solve",
				`{"transmissions": [0.5, 0.25], "t_des": 0.3, "mode": "`+tt.mode+`"}`)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status: got %d", resp.StatusCode)
			}
			var body configResponse
			decodeBody(t, resp, &body)
			if body.Transmission != tt.wantT {
				t.Errorf("transmission: got %g, want %g", body.Transmission, tt.wantT)
			}
			for i, want := range tt.wantStates {
				if body.FilterStates[i] != want {
					t.Errorf("states: got %v, want %v", body.FilterStates, tt.wantStates)
					break
				}
			}
		})
	}
}

func TestSolve_StuckBladeIsNull(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/solve",
		`{"transmissions": [0.5, null], "t_des": 0.4, "mode": "floor"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body configResponse
	decodeBody(t, resp, &body)
	if body.FilterStates[1] != 0 {
		t.Errorf("stuck blade must stay out: %v", body.FilterStates)
	}
	if body.AllTransmissions[1] != nil {
		t.Errorf("stuck blade transmission should be null, got %v", *body.AllTransmissions[1])
	}
}

func TestSolve_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"bad mode", `{"transmissions": [0.5], "t_des": 0.3, "mode": "nearest"}`, "INVALID_MODE"},
		{"empty", `{"transmissions": [], "t_des": 0.3, "mode": "floor"}`, "EMPTY_TRANSMISSIONS"},
		{"malformed json", `{`, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, ts.URL+"/v1/solve", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", resp.StatusCode)
			}
			var body errorBody
			decodeBody(t, resp, &body)
			if body.Error.Code != tt.wantCode {
				t.Errorf("code: got %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestSolvePriority(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/solve/priority",
		`{"materials": ["C"], "transmissions": [0.5], "material_order": ["C"], "t_des": 0.5}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body configResponse
	decodeBody(t, resp, &body)
	if body.Transmission != 0.5 {
		t.Errorf("transmission: got %g, want 0.5", body.Transmission)
	}
	if body.FilterStates[0] != 1 {
		t.Errorf("states: got %v, want [1]", body.FilterStates)
	}
}

func TestSolvePriority_LengthMismatch(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/v1/solve/priority",
		`{"materials": ["C", "Si"], "transmissions": [0.5], "material_order": ["C"], "t_des": 0.5}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", resp.StatusCode)
	}
}

func TestTransmission(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/v1/transmission?material=Si&energy_ev=9000&thickness_m=0.0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	var body transmissionResponse
	decodeBody(t, resp, &body)
	if body.Material != "Si" {
		t.Errorf("material: got %q", body.Material)
	}
	if !(body.Transmission > 0 && body.Transmission < 1) {
		t.Errorf("transmission %g not in (0, 1)", body.Transmission)
	}
}

func TestTransmission_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"unknown material", "material=Unobtainium&energy_ev=9000&thickness_m=1e-6", "INVALID_MATERIAL"},
		{"bad energy", "material=Si&energy_ev=lots&thickness_m=1e-6", "INVALID_ENERGY"},
		{"negative thickness", "material=Si&energy_ev=9000&thickness_m=-1e-6", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/v1/transmission?" + tt.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", resp.StatusCode)
			}
			var body errorBody
			decodeBody(t, resp, &body)
			if body.Error.Code != tt.code {
				t.Errorf("code: got %q, want %q", body.Error.Code, tt.code)
			}
		})
	}
}
