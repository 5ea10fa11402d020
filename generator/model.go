package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ecodyn/internal/xlog"
)

// Model draws one candidate S x S boolean adjacency (Adjacency[i][j] == true
// iff species i consumes species j) from a structural foodweb distribution.
type Model interface {
	Sample(rng *rand.Rand, s int) [][]bool
}

// Target bounds an acceptable candidate: either a connectance or an absolute
// link count (whichever is nonzero; Connectance takes precedence if both
// are), within Tolerance, resampled up to IterMax times.
type Target struct {
	Connectance       float64 // desired C = L / S^2, ignored if zero
	LinkCount         int     // desired L, used if Connectance == 0
	Tolerance         float64
	IterMax           int
	CheckCycle        bool // reject candidates containing a directed cycle
	CheckDisconnected bool // reject candidates with >1 weakly connected component
}

// Report describes the accepted candidate.
type Report struct {
	Connectance  float64
	LinkCount    int
	Iterations   int
	HasCycle     bool
	Disconnected bool
}

// Generate resamples model until a candidate of size s meets target, or
// returns ErrGenerationFailed after target.IterMax attempts. check_cycle and
// check_disconnected filter candidates strictly (rejected, not flagged);
// when both are false the accepted candidate's Report still reports what it
// found, so callers can surface a non-fatal advisory.
func Generate(rng *rand.Rand, model Model, s int, target Target) ([][]bool, Report, error) {
	if target.IterMax <= 0 {
		target.IterMax = 1
	}
	for it := 1; it <= target.IterMax; it++ {
		cand := model.Sample(rng, s)
		links := countLinks(cand)
		conn := float64(links) / float64(s*s)

		if !withinTolerance(conn, links, target) {
			continue
		}
		hasCycle := detectCycle(cand)
		if target.CheckCycle && hasCycle {
			continue
		}
		disc := isDisconnected(cand, s)
		if target.CheckDisconnected && disc {
			continue
		}
		if it > 1 {
			xlog.Logger.Debug().Int("iterations", it).Msg("structural foodweb resample")
		}
		return cand, Report{Connectance: conn, LinkCount: links, Iterations: it, HasCycle: hasCycle, Disconnected: disc}, nil
	}
	return nil, Report{}, fmt.Errorf("generator: s=%d target=%+v: %w", s, target, ErrGenerationFailed)
}

func withinTolerance(conn float64, links int, target Target) bool {
	if target.Connectance > 0 {
		return abs(conn-target.Connectance) <= target.Tolerance
	}
	if target.LinkCount > 0 {
		return abs(float64(links-target.LinkCount)) <= target.Tolerance
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func countLinks(a [][]bool) int {
	n := 0
	for _, row := range a {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// detectCycle runs recursive DFS cycle detection over the consumes-relation
// (i -> j means i consumes j).
func detectCycle(a [][]bool) bool {
	s := len(a)
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, s)
	var visit func(u int) bool
	visit = func(u int) bool {
		color[u] = gray
		for v := 0; v < s; v++ {
			if !a[u][v] {
				continue
			}
			if color[v] == gray {
				return true
			}
			if color[v] == white && visit(v) {
				return true
			}
		}
		color[u] = black
		return false
	}
	for u := 0; u < s; u++ {
		if color[u] == white && visit(u) {
			return true
		}
	}
	return false
}

// isDisconnected reports whether the candidate's undirected (symmetrized)
// graph has more than one weakly connected component.
func isDisconnected(a [][]bool, s int) bool {
	if s == 0 {
		return false
	}
	visited := make([]bool, s)
	queue := []int{0}
	visited[0] = true
	seen := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < s; v++ {
			if visited[v] {
				continue
			}
			if a[u][v] || a[v][u] {
				visited[v] = true
				seen++
				queue = append(queue, v)
			}
		}
	}
	return seen != s
}
