package runid

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Give each benchmark run a readable name, so that reports and charts from
// the same run are easy to match up. Names are random between runs; they
// identify a run, they don't describe it.

func init() {
	petname.NonDeterministicMode()
}

func New() string {
	return fmt.Sprintf("%s%s", title(petname.Adverb()), title(petname.Name()))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
