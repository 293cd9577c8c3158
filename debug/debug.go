package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Tree    bool
	Reduce  bool
	Balance bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("STOIK_DEBUG_TOKENS")
	d.Tree = boolEnv("STOIK_DEBUG_TREE")
	d.Reduce = boolEnv("STOIK_DEBUG_REDUCE")
	d.Balance = boolEnv("STOIK_DEBUG_BALANCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Tree() bool {
	return d.Tree
}
func Reduce() bool {
	return d.Reduce
}
func Balance() bool {
	return d.Balance
}
