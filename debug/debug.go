package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Path   bool
	Put    bool
	Push   bool
	Assign bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("TOMLOPS_DEBUG_PATH")
	d.Put = boolEnv("TOMLOPS_DEBUG_PUT")
	d.Push = boolEnv("TOMLOPS_DEBUG_PUSH")
	d.Assign = boolEnv("TOMLOPS_DEBUG_ASSIGN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Put() bool {
	return d.Put
}
func Push() bool {
	return d.Push
}
func Assign() bool {
	return d.Assign
}
