package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/pcdshub/hxr-attenuator/pkg/absorb"
	"github.com/pcdshub/hxr-attenuator/pkg/errors"
	"github.com/pcdshub/hxr-attenuator/pkg/solver"
)

// solveRequest is the body of POST /v1/solve. A null transmission marks a
// stuck blade (NaN is not representable in JSON).
type solveRequest struct {
	Transmissions []*float64 `json:"transmissions"`
	TDes          float64    `json:"t_des"`
	TBase         *float64   `json:"t_base,omitempty"`
	Mode          string     `json:"mode"`
}

type priorityRequest struct {
	Materials     []string   `json:"materials"`
	Transmissions []*float64 `json:"transmissions"`
	MaterialOrder []string   `json:"material_order"`
	TDes          float64    `json:"t_des"`
}

// configResponse mirrors solver.Config with nulls for NaN.
type configResponse struct {
	FilterStates     []int      `json:"filter_states"`
	Transmission     float64    `json:"transmission"`
	AllTransmissions []*float64 `json:"all_transmissions"`
	InsertedCount    int        `json:"inserted_count"`
}

func toResponse(cfg solver.Config) configResponse {
	all := make([]*float64, len(cfg.AllTransmissions))
	for i, t := range cfg.AllTransmissions {
		if !math.IsNaN(t) {
			v := t
			all[i] = &v
		}
	}
	return configResponse{
		FilterStates:     cfg.FilterStates,
		Transmission:     cfg.Transmission,
		AllTransmissions: all,
		InsertedCount:    cfg.InsertedCount(),
	}
}

// fromNullable expands null entries to NaN.
func fromNullable(in []*float64) []float64 {
	out := make([]float64, len(in))
	for i, p := range in {
		if p == nil {
			out[i] = math.NaN()
		} else {
			out[i] = *p
		}
	}
	return out
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request"))
		return
	}
	mode, err := solver.ParseMode(req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	transmissions := fromNullable(req.Transmissions)

	var cfg solver.Config
	if req.TBase != nil {
		floor, ceiling, ferr := solver.FindConfigs(transmissions, req.TDes, *req.TBase)
		if ferr != nil {
			writeError(w, ferr)
			return
		}
		if mode == solver.ModeFloor {
			cfg = floor
		} else {
			cfg = ceiling
		}
	} else {
		cfg, err = solver.BestConfig(transmissions, req.TDes, mode)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, toResponse(cfg))
}

func (s *Server) handleSolvePriority(w http.ResponseWriter, r *http.Request) {
	var req priorityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding request"))
		return
	}
	cfg, err := solver.BestConfigWithMaterialPriority(
		req.Materials, fromNullable(req.Transmissions), req.MaterialOrder, req.TDes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(cfg))
}

// transmissionResponse is the body of GET /v1/transmission.
type transmissionResponse struct {
	Material     string  `json:"material"`
	EnergyEV     float64 `json:"energy_ev"`
	ClosestEV    float64 `json:"closest_ev"`
	ThicknessM   float64 `json:"thickness_m"`
	Transmission float64 `json:"transmission"`
}

func (s *Server) handleTransmission(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	material := q.Get("material")
	energy, err := strconv.ParseFloat(q.Get("energy_ev"), 64)
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidEnergy, "energy_ev %q", q.Get("energy_ev")))
		return
	}
	thickness, err := strconv.ParseFloat(q.Get("thickness_m"), 64)
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "thickness_m %q", q.Get("thickness_m")))
		return
	}

	table, err := absorb.Builtin(material)
	if err != nil {
		writeError(w, err)
		return
	}
	tr, err := table.Transmission(energy, thickness)
	if err != nil {
		writeError(w, err)
		return
	}
	closest, _ := table.ClosestEnergy(energy)
	writeJSON(w, http.StatusOK, transmissionResponse{
		Material:     material,
		EnergyEV:     energy,
		ClosestEV:    closest,
		ThicknessM:   thickness,
		Transmission: tr,
	})
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.IsValidation(err) {
		status = http.StatusBadRequest
	}
	var body errorBody
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	body.Error.Code = string(code)
	body.Error.Message = err.Error()
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
