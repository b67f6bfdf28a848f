// Package debug provides environment-gated debug logging for the
// save-file tooling. Set SAV_DEBUG_PARSE or SAV_DEBUG_DIFF to a
// truthy value to enable the corresponding traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SAV_DEBUG_PARSE")
	d.Diff = boolEnv("SAV_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
