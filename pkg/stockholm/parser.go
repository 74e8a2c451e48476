package stockholm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/stholm/stholm/pkg/errors"
)

// Parse reads a Stockholm 1.0 alignment from r. Blocked (interleaved)
// files are supported: sequence data and GC/GR annotation data accumulate
// across blocks in first-occurrence order. Lines after the "//" terminator
// are ignored. Returns an error when the header is missing, the input is
// empty, or sequences end up with inconsistent lengths.
func Parse(r io.Reader) (*Alignment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "read failed")
		}
		return nil, errors.New(errors.ErrCodeUnexpectedEOF, "empty input")
	}
	if !strings.HasPrefix(scanner.Text(), "# STOCKHOLM") {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid Stockholm header")
	}

	a := NewAlignment()

	// Accumulators for the blocked format.
	seqData := make(map[string]*strings.Builder)
	var seqOrder []string
	gcData := make(map[string]*strings.Builder)
	var gcOrder []string
	type grKey struct{ seqid, tag string }
	grData := make(map[grKey]*strings.Builder)
	var grOrder []grKey

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			break
		}

		switch {
		case strings.HasPrefix(line, "#=GF"):
			tag, value := splitTagValue(strings.TrimSpace(line[4:]))
			if tag != "" {
				a.FileAnnotations = append(a.FileAnnotations, FileAnnotation{Tag: tag, Value: value})
			}

		case strings.HasPrefix(line, "#=GS"):
			seqid, rest := splitTagValue(line[4:])
			tag, value := splitTagValue(rest)
			if seqid != "" && tag != "" && value != "" {
				a.SequenceAnnotations[seqid] = append(a.SequenceAnnotations[seqid],
					SequenceAnnotation{Tag: tag, Value: value})
			}

		case strings.HasPrefix(line, "#=GC"):
			tag, data := splitTagValue(strings.TrimSpace(line[4:]))
			if tag == "" {
				continue
			}
			b, ok := gcData[tag]
			if !ok {
				b = &strings.Builder{}
				gcData[tag] = b
				gcOrder = append(gcOrder, tag)
			}
			b.WriteString(data)

		case strings.HasPrefix(line, "#=GR"):
			seqid, rest := splitTagValue(line[4:])
			tag, data := splitTagValue(rest)
			if seqid == "" || tag == "" || data == "" {
				continue
			}
			key := grKey{seqid: seqid, tag: tag}
			b, ok := grData[key]
			if !ok {
				b = &strings.Builder{}
				grData[key] = b
				grOrder = append(grOrder, key)
			}
			b.WriteString(data)

		case strings.HasPrefix(line, "#"):
			// Plain comment.

		default:
			seqid, data := splitTagValue(line)
			if seqid == "" || data == "" {
				continue
			}
			// Some writers pad sequence data with internal spaces.
			data = strings.ReplaceAll(data, " ", "")
			b, ok := seqData[seqid]
			if !ok {
				b = &strings.Builder{}
				seqData[seqid] = b
				seqOrder = append(seqOrder, seqid)
			}
			b.WriteString(data)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read failed")
	}

	for _, seqid := range seqOrder {
		a.Sequences = append(a.Sequences, NewSequence(seqid, seqData[seqid].String()))
	}
	for _, tag := range gcOrder {
		a.ColumnAnnotations = append(a.ColumnAnnotations, ColumnAnnotation{Tag: tag, Data: gcData[tag].String()})
	}
	for _, key := range grOrder {
		a.ResidueAnnotations[key.seqid] = append(a.ResidueAnnotations[key.seqid],
			ResidueAnnotation{Tag: key.tag, Data: grData[key].String()})
	}

	if !a.IsValid() {
		return nil, errors.New(errors.ErrCodeInvalidLengths, "inconsistent sequence lengths")
	}
	return a, nil
}

// ParseString parses a Stockholm alignment from a string.
func ParseString(s string) (*Alignment, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses a Stockholm alignment from a file.
func ParseFile(path string) (*Alignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// splitTagValue splits a line into its first whitespace-delimited field and
// the trimmed remainder. The remainder may be empty.
func splitTagValue(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
