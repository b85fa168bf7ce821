/*
 * errors.go, part of intcoord.
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

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else.
// The decoration slice should contain a list of functions in the calling stack,
// plus, for each function, any relevant information, in the form "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// Sentinels to be used with errors.Is.
var (
	ErrUnknownElement     = errors.New("unknown element")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// CError is the general error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// UnknownElementError is returned when an element symbol has no covalent radius.
// Bonding for the atom cannot be determined, so the whole analysis fails.
type UnknownElementError struct {
	Symbol string
	Index  int //-1 if the lookup was not for a particular atom.
	deco   []string
}

func (err *UnknownElementError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("no covalent radius for element %q", err.Symbol)
	}
	return fmt.Sprintf("no covalent radius for element %q (atom %d)", err.Symbol, err.Index)
}

// Decorate adds dec to the call stack information of the error.
func (err *UnknownElementError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap allows errors.Is(err, ErrUnknownElement).
func (err *UnknownElementError) Unwrap() error { return ErrUnknownElement }

// DegenerateGeometryError is produced when a zero-length interatomic vector or
// a collinear triple makes a unit vector or a plane normal undefined.
// It is local to one angle or torsion.
type DegenerateGeometryError struct {
	Atoms  []int //0-based indexes of the atoms involved
	Reason string
	deco   []string
}

func (err *DegenerateGeometryError) Error() string {
	ats := make([]string, len(err.Atoms))
	for i, v := range err.Atoms {
		ats[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("degenerate geometry for atoms %s: %s", strings.Join(ats, "-"), err.Reason)
}

// Decorate adds dec to the call stack information of the error.
func (err *DegenerateGeometryError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Unwrap allows errors.Is(err, ErrDegenerateGeometry).
func (err *DegenerateGeometryError) Unwrap() error { return ErrDegenerateGeometry }

// errDecorate is a helper function that asserts that the error
// implements the Error interface and decorates it with caller.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

// withAtoms sets the atom indexes of a degenerate geometry error, which the
// vector primitives do not know.
func withAtoms(err error, atoms ...int) error {
	var d *DegenerateGeometryError
	if errors.As(err, &d) {
		d.Atoms = atoms
	}
	return err
}
