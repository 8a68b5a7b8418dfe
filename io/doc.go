// Package io provides the file formats that surround a circuit: YAML seed
// files that force wire signals before a run, and tabular wire reports.
package io
