package stockholm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write serializes the alignment in single-block Stockholm 1.0 layout:
// header, GF annotations, GS annotations, sequences interleaved with their
// GR annotations, GC annotations, terminator. Sequence IDs are padded to a
// common width so residue columns line up.
func Write(a *Alignment, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# STOCKHOLM 1.0")

	for _, ann := range a.FileAnnotations {
		fmt.Fprintf(bw, "#=GF %s %s\n", ann.Tag, ann.Value)
	}
	if len(a.FileAnnotations) > 0 {
		fmt.Fprintln(bw)
	}

	padding := a.MaxIDLen()
	if padding < 10 {
		padding = 10
	}

	for _, seq := range a.Sequences {
		for _, ann := range a.SequenceAnnotations[seq.ID] {
			fmt.Fprintf(bw, "#=GS %-*s %s %s\n", padding, seq.ID, ann.Tag, ann.Value)
		}
	}
	if len(a.SequenceAnnotations) > 0 {
		fmt.Fprintln(bw)
	}

	for _, seq := range a.Sequences {
		fmt.Fprintf(bw, "%-*s %s\n", padding, seq.ID, seq.Data())
		for _, ann := range a.ResidueAnnotations[seq.ID] {
			fmt.Fprintf(bw, "#=GR %-*s %s %s\n", padding, seq.ID, ann.Tag, ann.Data)
		}
	}

	for _, ann := range a.ColumnAnnotations {
		fmt.Fprintf(bw, "#=GC %-*s %s\n", padding, ann.Tag, ann.Data)
	}

	fmt.Fprintln(bw, "//")
	return bw.Flush()
}

// WriteString serializes the alignment to a string.
func WriteString(a *Alignment) (string, error) {
	var b strings.Builder
	if err := Write(a, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile serializes the alignment to a file.
func WriteFile(a *Alignment, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(a, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
