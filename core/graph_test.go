package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/movrin/wavefront/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected by default; individual tests may build their own
	g, err := core.New(8)
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNewValidation() {
	require := require.New(s.T())

	_, err := core.New(-1)
	require.ErrorIs(err, core.ErrNegativeVertexCount, "negative vertex count must be rejected")

	empty, err := core.New(0)
	require.NoError(err, "zero vertices is a valid degenerate graph")
	require.Equal(0, empty.VertexCount())
	require.Equal(0, empty.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeBidirectionalDefault() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 2))

	nb0, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1, 2}, nb0, "neighbors keep insertion order")

	nb1, err := s.g.Neighbors(1)
	require.NoError(err)
	require.Equal([]int{0}, nb1, "bidirectional insertion mirrors the edge")

	require.Equal(2, s.g.EdgeCount(), "a bidirectional edge counts once")
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())

	dg, err := core.New(3, core.WithDirected())
	require.NoError(err)
	require.True(dg.Directed())

	require.NoError(dg.AddEdge(0, 1))
	require.True(dg.HasEdge(0, 1), "expected edge 0→1")
	require.False(dg.HasEdge(1, 0), "directed insertion must not mirror")

	// Per-edge override on a directed graph restores the mirror.
	require.NoError(dg.AddEdge(1, 2, core.WithEdgeDirected(false)))
	require.True(dg.HasEdge(1, 2) && dg.HasEdge(2, 1), "override should store both directions")

	// Per-edge override on an undirected graph suppresses it.
	require.NoError(s.g.AddEdge(0, 1, core.WithEdgeDirected(true)))
	require.True(s.g.HasEdge(0, 1))
	require.False(s.g.HasEdge(1, 0), "override should suppress the mirror")
}

func (s *GraphSuite) TestAddEdgeRange() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge(-1, 0), core.ErrVertexRange)
	require.ErrorIs(s.g.AddEdge(0, 8), core.ErrVertexRange)
	require.Equal(0, s.g.EdgeCount(), "rejected insertions must not mutate the graph")

	deg, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(0, deg)
}

func (s *GraphSuite) TestDuplicatesAndSelfLoops() {
	require := require.New(s.T())

	// Parallel edges are kept in order.
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 1))
	nb0, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1, 1}, nb0, "duplicate insertions must be preserved")

	// A bidirectional self-loop stores two entries.
	require.NoError(s.g.AddEdge(2, 2))
	nb2, err := s.g.Neighbors(2)
	require.NoError(err)
	require.Equal([]int{2, 2}, nb2)

	deg2, err := s.g.Degree(2)
	require.NoError(err)
	require.Equal(2, deg2, "loop degree counts both stored entries")

	// A directed self-loop stores one.
	require.NoError(s.g.AddEdge(3, 3, core.WithEdgeDirected(true)))
	nb3, err := s.g.Neighbors(3)
	require.NoError(err)
	require.Equal([]int{3}, nb3)
}

func (s *GraphSuite) TestNeighborsIsolation() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1))
	nb, err := s.g.Neighbors(0)
	require.NoError(err)

	nb[0] = 99
	again, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1}, again, "returned slice must not alias graph state")

	iso, err := s.g.Neighbors(7)
	require.NoError(err)
	require.NotNil(iso, "isolated vertex yields an empty, non-nil slice")
	require.Empty(iso)

	_, err = s.g.Neighbors(8)
	require.ErrorIs(err, core.ErrVertexRange)
	_, err = s.g.Degree(-1)
	require.ErrorIs(err, core.ErrVertexRange)
}

func (s *GraphSuite) TestHasEdge() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1))
	require.True(s.g.HasEdge(0, 1))
	require.True(s.g.HasEdge(1, 0))
	require.False(s.g.HasEdge(0, 2))
	require.False(s.g.HasEdge(-1, 0), "out-of-range lookups report false")
	require.False(s.g.HasEdge(0, 8))
}

func (s *GraphSuite) TestClone() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(1, 2))

	c := s.g.Clone()
	require.Equal(s.g.VertexCount(), c.VertexCount())
	require.Equal(s.g.EdgeCount(), c.EdgeCount())
	require.Equal(s.g.String(), c.String())

	require.NoError(c.AddEdge(2, 3))
	require.True(c.HasEdge(2, 3))
	require.False(s.g.HasEdge(2, 3), "mutating the clone must not touch the original")
}

func (s *GraphSuite) TestWriteAdjacency() {
	require := require.New(s.T())

	g, err := core.New(4)
	require.NoError(err)
	require.NoError(g.AddEdge(0, 1))
	require.NoError(g.AddEdge(0, 2))
	require.NoError(g.AddEdge(1, 3))

	want := "Graph Adjacency List:\n" +
		"0 -> [1 2]\n" +
		"1 -> [0 3]\n" +
		"2 -> [0]\n" +
		"3 -> [1]\n"

	var sb strings.Builder
	require.NoError(g.WriteAdjacency(&sb))
	require.Equal(want, sb.String())
	require.Equal(want, g.String())

	require.ErrorIs(g.WriteAdjacency(nil), core.ErrNilWriter)
}

func (s *GraphSuite) TestWriteAdjacencyEmptyAndIsolated() {
	require := require.New(s.T())

	empty, err := core.New(0)
	require.NoError(err)
	require.Equal("Graph Adjacency List:\n", empty.String(), "empty graph dumps only the header")

	iso, err := core.New(2)
	require.NoError(err)
	require.Equal("Graph Adjacency List:\n0 -> []\n1 -> []\n", iso.String())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
