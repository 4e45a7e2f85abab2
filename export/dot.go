package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathlab/core"
)

// WriteDOT writes edges as an undirected Graphviz graph:
//
//	graph G {
//	    0 -- 3;
//	}
func WriteDOT(w io.Writer, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("graph G {\n"); err != nil {
		return errors.Wrap(err, "write dot header")
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "    %d -- %d;\n", e.U, e.V); err != nil {
			return errors.Wrapf(err, "write dot edge %d -- %d", e.U, e.V)
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return errors.Wrap(err, "write dot footer")
	}

	return errors.Wrap(bw.Flush(), "flush dot")
}
