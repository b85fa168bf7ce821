/*
 * graph.go, part of intcoord.
 *
 * Copyright 2026 The intcoord Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package intcoord

//This file makes BondGraph a gonum graph.Undirected, so the gonum graph
//algorithms and encoders can be used on it. Node IDs are atom indexes.

import (
	"fmt"

	v3 "github.com/rmera/intcoord/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/iterator"
)

// AtomNode is the graph.Node for one atom of a BondGraph.
type AtomNode struct {
	Index  int
	Symbol string
}

// ID returns the atom index.
func (A AtomNode) ID() int64 { return int64(A.Index) }

// Attributes labels the node with the element and the 1-based atom number, e.g. "C1".
func (A AtomNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", fmt.Sprintf("%s%d", A.Symbol, A.Index+1))}}
}

// BondEdge is the graph.Edge between two bonded atoms.
type BondEdge struct {
	F, T AtomNode
	Dist float64
}

// From returns the from node.
func (B BondEdge) From() graph.Node { return B.F }

// To returns the to node.
func (B BondEdge) To() graph.Node { return B.T }

// ReversedEdge returns a copy of the edge with the nodes swapped.
func (B BondEdge) ReversedEdge() graph.Edge { return BondEdge{F: B.T, T: B.F, Dist: B.Dist} }

// Weight returns the bond length, so BondEdge is a graph.WeightedEdge.
func (B BondEdge) Weight() float64 { return B.Dist }

// Attributes labels the edge with the bond length.
func (B BondEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", fmt.Sprintf("%.3f", B.Dist))}}
}

func (B *BondGraph) node(i int) AtomNode {
	return AtomNode{Index: i, Symbol: B.geom.Atoms[i].Symbol}
}

func (B *BondGraph) valid(id int64) bool {
	return id >= 0 && id < int64(len(B.neighbors))
}

// Node returns the node with the given ID, or nil if it is not in the graph.
func (B *BondGraph) Node(id int64) graph.Node {
	if !B.valid(id) {
		return nil
	}
	return B.node(int(id))
}

// Nodes returns all the atoms, in index order.
func (B *BondGraph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(B.neighbors))
	for i := range B.neighbors {
		nodes[i] = B.node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From returns the atoms bonded to the atom with the given ID, in neighbor order.
func (B *BondGraph) From(id int64) graph.Nodes {
	if !B.valid(id) {
		return graph.Empty
	}
	neigh := B.neighbors[id]
	if len(neigh) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(neigh))
	for i, v := range neigh {
		nodes[i] = B.node(v)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween returns whether the atoms with the given IDs are bonded.
func (B *BondGraph) HasEdgeBetween(xid, yid int64) bool {
	return B.Bonded(int(xid), int(yid))
}

// Edge returns the bond between u and v, or nil if they are not bonded.
func (B *BondGraph) Edge(uid, vid int64) graph.Edge {
	return B.EdgeBetween(uid, vid)
}

// EdgeBetween returns the bond between x and y, or nil if they are not bonded.
func (B *BondGraph) EdgeBetween(xid, yid int64) graph.Edge {
	if !B.HasEdgeBetween(xid, yid) {
		return nil
	}
	x, y := int(xid), int(yid)
	return BondEdge{F: B.node(x), T: B.node(y), Dist: v3.Distance(B.geom.Coord(x), B.geom.Coord(y))}
}

var _ graph.Undirected = (*BondGraph)(nil)
