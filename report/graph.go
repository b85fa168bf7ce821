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

package report

import (
	"io"

	"github.com/rmera/intcoord"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

// WriteDOT writes the bond graph in the Graphviz DOT language. Nodes are
// labeled with the element and atom number, edges with the bond length.
func WriteDOT(w io.Writer, B *intcoord.BondGraph, name string) error {
	b, err := dot.Marshal(B, name, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
