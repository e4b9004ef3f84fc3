// Package graphio reads and writes the plain-text graph formats used by the
// benchmark.
//
// Adjacency format (input and generator output), one arc per line:
//
//	<node1> <node2> <cost>
//
// Fields are whitespace-separated integers; blank lines are ignored. Each
// undirected edge appears twice, once from each endpoint. Load stores every
// line as a single arc, so the loaded graph is exactly as symmetric as the
// file.
//
// Edge-list format (visualization output), one tree edge per line:
//
//	<node1> <node2> {'cost': <cost>}
//
// The attribute annotation follows the convention graph-drawing tools use
// to read edge data from a text edge list.
package graphio
