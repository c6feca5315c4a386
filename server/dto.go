package server

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/solve"
)

// PointDTO is a grid coordinate on the wire.
type PointDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p PointDTO) point() gridgraph.Point { return gridgraph.Point{Row: p.Row, Col: p.Col} }

// SolveRequest is the body of POST /v1/solve.
type SolveRequest struct {
	Start  *PointDTO `json:"start" binding:"required"`
	End    *PointDTO `json:"end" binding:"required"`
	Grid   [][]int   `json:"grid" binding:"required"`
	Solver string    `json:"solver"`
}

// cells converts the wire grid to cell codes, rejecting values outside 0..255.
func (r *SolveRequest) cells() ([][]uint8, error) {
	out := make([][]uint8, len(r.Grid))
	for i, row := range r.Grid {
		out[i] = make([]uint8, len(row))
		for j, v := range row {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("%w: grid[%d][%d] = %d", mazefile.ErrBadCell, i, j, v)
			}
			out[i][j] = uint8(v)
		}
	}
	return out, nil
}

// SolveResponse is returned by both solve endpoints.
type SolveResponse struct {
	Found      bool     `json:"found"`
	Directions []string `json:"directions"`
	PathLength int      `json:"path_length"`
	Explored   int      `json:"explored"`
	Solver     string   `json:"solver"`
	Cached     bool     `json:"cached"`
}

func newSolveResponse(solver string, o solve.Outcome, cached bool) SolveResponse {
	resp := SolveResponse{
		Found:      o.Found,
		Directions: make([]string, 0, len(o.Directions)),
		Explored:   o.Explored,
		Solver:     solver,
		Cached:     cached,
	}
	for _, d := range o.Directions {
		resp.Directions = append(resp.Directions, d.String())
	}
	if o.Found {
		resp.PathLength = len(o.Directions)
	}
	return resp
}

// SolversResponse lists the available solver names.
type SolversResponse struct {
	Solvers []string `json:"solvers"`
	Default string   `json:"default"`
}
