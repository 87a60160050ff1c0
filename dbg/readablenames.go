package dbg

import (
	"fmt"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts cell ids into random readable names, which are much easier to
// follow in a step trace than bare integers. It leaks memory for every id it
// has named, so it's only meant for traces and debugging.

var (
	mu   sync.Mutex
	memo map[int]string
)

func init() {
	memo = make(map[int]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same cell between runs.
	petname.NonDeterministicMode()
}

func Name(id int) string {
	if id < 0 {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}

// Names maps Name over a list of ids.
func Names(ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = Name(id)
	}
	return names
}
