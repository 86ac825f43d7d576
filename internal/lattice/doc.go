// Package lattice loads spin configurations written by an Ising-model simulation.
//
// A configuration file holds one lattice row per line, each row a sequence of
// whitespace-separated integers (conventionally -1 or +1):
//
//	 1 -1  1
//	-1 -1  1
//	 1  1 -1
//
//   - [SpinMatrix]: rows in file order
//   - [ReadMatrix]: parse a configuration file from disk
//   - [Filename]: expand the configuration filename convention
//
// Values are not checked against the ±1 convention and ragged rows are kept
// as read. A blank line is an empty row, so a file with a stray blank line is
// ragged; [SpinMatrix.Dense] is the first place rectangularity matters.
package lattice
