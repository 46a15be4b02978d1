package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Match bool
	Diff  bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Match = boolEnv("DYN_DEBUG_MATCH")
	d.Diff = boolEnv("DYN_DEBUG_DIFF")
	d.Patch = boolEnv("DYN_DEBUG_PATCH")
	d.Query = boolEnv("DYN_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Match() bool {
	return d.Match
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
