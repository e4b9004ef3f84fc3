// Package report renders a bench.Report for the reporting collaborator:
// the two (size, elapsed) series as data, a YAML document for plotting
// tools, and a human-readable comparison table.
package report
