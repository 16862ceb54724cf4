package packing_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/telecast/core"
	"github.com/katalvlaran/telecast/packing"
)

// PackingSuite exercises GreedyPacking on hand-built digraphs.
type PackingSuite struct {
	suite.Suite
}

// path04 builds 0→1→2→3→4.
func (s *PackingSuite) path04() *core.Graph {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}} {
		s.Require().NoError(g.AddEdge(e[0], e[1]))
	}

	return g
}

// TestValidation verifies up-front input rejection.
func (s *PackingSuite) TestValidation() {
	g := s.path04()
	terms := []string{"2", "3", "4"}

	_, err := packing.GreedyPacking(nil, "0", terms, 1, 2)
	s.Require().ErrorIs(err, packing.ErrGraphNil)

	_, err = packing.GreedyPacking(g, "9", terms, 1, 2)
	s.Require().ErrorIs(err, packing.ErrRootNotFound)

	_, err = packing.GreedyPacking(g, "0", terms, 0, 2)
	s.Require().ErrorIs(err, packing.ErrBadK)

	_, err = packing.GreedyPacking(g, "0", terms, 4, 2)
	s.Require().ErrorIs(err, packing.ErrBadK, "k may not exceed |terminals|")

	_, err = packing.GreedyPacking(g, "0", terms, 1, 0)
	s.Require().ErrorIs(err, packing.ErrBadDepth)

	_, err = packing.GreedyPacking(g, "0", []string{"0"}, 1, 2)
	s.Require().ErrorIs(err, packing.ErrTerminalNotFound, "root is not a terminal")

	_, err = packing.GreedyPacking(g, "0", []string{"77"}, 1, 2)
	s.Require().ErrorIs(err, packing.ErrTerminalNotFound)
}

// TestSinglePackPath covers the path scenario: k=1 must yield exactly
// one single-terminal pack.
func (s *PackingSuite) TestSinglePackPath() {
	g := s.path04()

	packs, err := packing.GreedyPacking(g, "0", []string{"2", "3", "4"}, 1, 2)
	s.Require().NoError(err)
	s.Require().Len(packs, 1)
	s.Require().Len(packs[0], 1)
	s.Require().Contains([]string{"2", "3"}, packs[0][0])
}

// TestIslandTerminalPacksItself: a terminal that no other vertex
// reaches is still its own candidate root, so it forms a
// single-terminal pack.
func (s *PackingSuite) TestIslandTerminalPacksItself() {
	g := core.NewGraph()
	s.Require().NoError(g.AddEdge("0", "1"))
	// terminal "9" sits on an island no other vertex can reach
	s.Require().NoError(g.AddVertex("9"))

	packs, err := packing.GreedyPacking(g, "0", []string{"9"}, 1, 3)
	s.Require().NoError(err)
	s.Require().NotNil(packs)
	s.Require().Equal([]packing.Pack{{"9"}}, packs)
}

// TestStarRichPacking checks pack count and disjoint coverage on a
// two-branch digraph.
func (s *PackingSuite) TestStarRichPacking() {
	g := core.NewGraph()
	// branch 1: 0→1→{2,3}; branch 2: 0→4→{5,6}
	for _, e := range [][2]string{
		{"0", "1"}, {"1", "2"}, {"1", "3"},
		{"0", "4"}, {"4", "5"}, {"4", "6"},
	} {
		s.Require().NoError(g.AddEdge(e[0], e[1]))
	}

	packs, err := packing.GreedyPacking(g, "0", []string{"2", "3", "5", "6"}, 4, 2)
	s.Require().NoError(err)
	s.Require().Equal(2, packing.Rho(4))
	s.Require().Len(packs, 2)

	seen := map[string]bool{}
	for _, p := range packs {
		s.Require().NotEmpty(p)
		for _, term := range p {
			s.Require().False(seen[term], "terminal %s covered twice", term)
			seen[term] = true
		}
	}
	s.Require().Len(seen, 4, "both branches fully covered")
}

// TestTraceUsedSet verifies the trace reports root plus all discovery
// vertices.
func (s *PackingSuite) TestTraceUsedSet() {
	g := s.path04()

	packs, used, err := packing.GreedyPackingTrace(g, "0", []string{"3", "4"}, 2, 3)
	s.Require().NoError(err)
	s.Require().NotEmpty(packs)
	_, hasRoot := used["0"]
	s.Require().True(hasRoot, "root is always consumed")
	for _, p := range packs {
		for _, term := range p {
			_, ok := used[term]
			s.Require().True(ok, "covered terminal %s must be in the used set", term)
		}
	}
}

// TestDeterminism runs the same instance twice and expects identical
// output.
func (s *PackingSuite) TestDeterminism() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"0", "1"}, {"0", "2"}, {"1", "3"}, {"2", "3"},
		{"2", "4"}, {"4", "5"}, {"3", "6"}, {"1", "6"},
	} {
		s.Require().NoError(g.AddEdge(e[0], e[1]))
	}
	terms := []string{"3", "4", "5", "6"}

	a, err := packing.GreedyPacking(g, "0", terms, 3, 2)
	s.Require().NoError(err)
	b, err := packing.GreedyPacking(g, "0", terms, 3, 2)
	s.Require().NoError(err)
	s.Require().Equal(a, b)
}

func TestPackingSuite(t *testing.T) {
	suite.Run(t, new(PackingSuite))
}

// TestRho pins the shared structural bound.
func TestRho(t *testing.T) {
	require.Equal(t, 0, packing.Rho(0))
	require.Equal(t, 1, packing.Rho(1))
	require.Equal(t, 2, packing.Rho(2))
	require.Equal(t, 2, packing.Rho(4))
	require.Equal(t, 3, packing.Rho(5))
	require.Equal(t, 4, packing.Rho(16))
	require.Equal(t, 5, packing.Rho(17))
}
