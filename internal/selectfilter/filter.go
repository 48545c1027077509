// Package selectfilter narrows a committed selection with a JavaScript
// predicate evaluated by goja.
package selectfilter

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
)

// ErrCompile is returned (wrapped) when an expression does not parse.
var ErrCompile = errors.New("selectfilter: compile")

// Node is the view of a canvas node the expression sees as `node`.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// Filter is a compiled predicate. The zero Filter and one built from an
// empty expression keep every node.
type Filter struct {
	src  string
	prog *goja.Program
	rt   *goja.Runtime
	log  *slog.Logger
}

// Compile parses expr. Whitespace-only expressions yield a pass-through
// filter.
func Compile(expr string, log *slog.Logger) (*Filter, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	f := &Filter{src: strings.TrimSpace(expr), log: log}
	if f.src == "" {
		return f, nil
	}
	prog, err := goja.Compile("filter", "("+f.src+")", true)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, f.src, err)
	}
	f.prog = prog
	f.rt = goja.New()
	f.rt.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	return f, nil
}

// Source returns the trimmed expression.
func (f *Filter) Source() string {
	if f == nil {
		return ""
	}
	return f.src
}

// Empty reports whether the filter keeps everything.
func (f *Filter) Empty() bool { return f == nil || f.prog == nil }

// Match evaluates the predicate for n. A runtime error counts as false and
// is logged.
func (f *Filter) Match(n Node) bool {
	if f.Empty() {
		return true
	}
	if err := f.rt.Set("node", n); err != nil {
		f.log.Warn("selectfilter: bind node", "id", n.ID, "err", err)
		return false
	}
	v, err := f.rt.RunProgram(f.prog)
	if err != nil {
		f.log.Warn("selectfilter: eval", "expr", f.src, "id", n.ID, "err", err)
		return false
	}
	return v.ToBoolean()
}

// Apply keeps the ids whose node matches. lookup resolves an id; ids it
// does not know are dropped.
func (f *Filter) Apply(ids []int, lookup func(id int) (Node, bool)) []int {
	if f.Empty() {
		return ids
	}
	out := ids[:0:0]
	for _, id := range ids {
		n, ok := lookup(id)
		if ok && f.Match(n) {
			out = append(out, id)
		}
	}
	return out
}
