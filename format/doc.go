// Package format names the output formats the sav tool can emit:
// native save text, YAML and JSON.
package format
