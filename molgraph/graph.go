//Package molgraph presents the bond graph of a frame as a gonum graph,
//so the gonum graph algorithms can be run on it directly.
package molgraph

import (
	"sort"

	md "github.com/rmera/gomd"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the bond graph: one atom of a frame, identified by
// its index, with its 1-based type if known.
type Atom struct {
	index int
	typ   int
}

func (A Atom) ID() int64 { return int64(A.index) }

// Type returns the 1-based atom type, or 0 if the graph was built
// without types.
func (A Atom) Type() int { return A.typ }

// Bond is an edge between two bonded atoms.
type Bond struct {
	at1, at2 Atom
}

func (B Bond) From() graph.Node { return B.at1 }

func (B Bond) To() graph.Node { return B.at2 }

// Bonds are not directional, so the reversed edge is just the edge with
// its atoms exchanged.
func (B Bond) ReversedEdge() graph.Edge { return Bond{B.at2, B.at1} }

// Graph is a read-only view of a neighbor list as an undirected gonum
// graph. It implements graph.Undirected.
type Graph struct {
	nl  *md.NeighborList
	ats []Atom
}

// NewGraph builds a Graph over the given neighbor list. types, if not
// nil, gives the 1-based type of each atom, to be carried on the nodes;
// it must then have one entry per atom of the list.
func NewGraph(nl *md.NeighborList, types []int) *Graph {
	G := &Graph{nl: nl, ats: make([]Atom, nl.Len())}
	for i := range G.ats {
		G.ats[i].index = i
		if types != nil {
			G.ats[i].typ = types[i]
		}
	}
	return G
}

func (G *Graph) has(id int64) bool {
	return id >= 0 && id < int64(len(G.ats))
}

func (G *Graph) Node(id int64) graph.Node {
	if !G.has(id) {
		return nil
	}
	return G.ats[id]
}

func (G *Graph) Nodes() graph.Nodes {
	if len(G.ats) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(G.ats))
	for i, a := range G.ats {
		nodes[i] = a
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G *Graph) From(id int64) graph.Nodes {
	if !G.has(id) {
		return graph.Empty
	}
	neigh := G.nl.Neighbors(int(id))
	if len(neigh) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(neigh))
	for i, j := range neigh {
		nodes[i] = G.ats[j]
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	if !G.has(xid) || !G.has(yid) || xid == yid {
		return false
	}
	neigh := G.nl.Neighbors(int(xid))
	k := sort.SearchInts(neigh, int(yid))
	return k < len(neigh) && neigh[k] == int(yid)
}

func (G *Graph) Edge(uid, vid int64) graph.Edge {
	return G.EdgeBetween(uid, vid)
}

func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	if !G.HasEdgeBetween(xid, yid) {
		return nil
	}
	return Bond{G.ats[xid], G.ats[yid]}
}

// Molecules returns the connected components of the graph as sorted
// atom-index lists, ordered by their first atom: the same decomposition
// and order that md.NeighborList.Molecules gives.
func (G *Graph) Molecules() [][]int {
	cc := topo.ConnectedComponents(G)
	mols := make([][]int, 0, len(cc))
	for _, comp := range cc {
		m := make([]int, 0, len(comp))
		for _, n := range comp {
			m = append(m, int(n.ID()))
		}
		sort.Ints(m)
		mols = append(mols, m)
	}
	sort.Slice(mols, func(i, j int) bool { return mols[i][0] < mols[j][0] })
	return mols
}
