// Package cli implements the clearview command line: offline resolution and
// highlight merging over JSON input, plus append and listing against the
// configured event store.
package cli
