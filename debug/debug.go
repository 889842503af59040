package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode  bool
	Encode  bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("JSONWIRE_DEBUG_DECODE")
	d.Encode = boolEnv("JSONWIRE_DEBUG_ENCODE")
	d.Convert = boolEnv("JSONWIRE_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Convert() bool {
	return d.Convert
}
