package gridgraph

import (
	"fmt"
	"io"

	"github.com/katalvlaran/domino/core"
)

// Dump writes every vertex of the network, in handle order, with its
// coordinates and outgoing edges. It is a debugging aid only.
//
//	(0,0) black -> (0,1):1 (1,0):1
//	(0,1) red -> sink:1
//	source -> (0,0):1
func (cb *Checkerboard) Dump(w io.Writer) error {
	for _, v := range cb.Graph.Vertices() {
		if _, err := fmt.Fprint(w, cb.label(v, true)); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, " ->"); err != nil {
			return err
		}
		for _, nbr := range cb.Graph.Neighbors(v) {
			c, _ := cb.Graph.Capacity(v, nbr)
			if _, err := fmt.Fprintf(w, " %s:%d", cb.label(nbr, false), c); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// label names a vertex by position, or as source/sink.
func (cb *Checkerboard) label(v core.VertexID, withColor bool) string {
	switch v {
	case cb.Source:
		return "source"
	case cb.Sink:
		return "sink"
	}
	at, ok := cb.coords[v]
	if !ok {
		return fmt.Sprintf("#%d", v)
	}
	if !withColor {
		return at.String()
	}
	_, color, _ := cb.Lookup(at)

	return fmt.Sprintf("%s %s", at, color)
}
