// Package stockholm reads and writes Stockholm 1.0 alignment files.
//
// Stockholm is the annotation-rich alignment format used by Rfam and Pfam:
// aligned sequences interleaved with file-level (#=GF), per-sequence (#=GS),
// per-column (#=GC) and per-residue (#=GR) annotations, terminated by "//".
// Both the single-block and the blocked (interleaved) layouts are accepted;
// blocked sequence data and annotations are concatenated across blocks.
//
// The package exposes the alignment as an ordered list of [Sequence] values
// plus annotation lists, with accessors for the annotations the analysis
// layers care about (SS_cons, RF).
package stockholm

import "strings"

// ShortID strips a coordinate suffix like "/10000-20000" from a Stockholm
// sequence ID.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '/'); i >= 0 {
		return id[:i]
	}
	return id
}

// Sequence is one aligned sequence: an identifier plus gapped residue data.
type Sequence struct {
	ID   string
	data []byte
}

// NewSequence creates a sequence from an ID and gapped residue data.
func NewSequence(id, data string) *Sequence {
	return &Sequence{ID: id, data: []byte(data)}
}

// Data returns the sequence data as a string.
func (s *Sequence) Data() string { return string(s.data) }

// Bytes returns the raw residue bytes. The slice is owned by the sequence;
// treat it as read-only unless you own the alignment.
func (s *Sequence) Bytes() []byte { return s.data }

// Len returns the number of columns.
func (s *Sequence) Len() int { return len(s.data) }

// Get returns the residue at col, or 0 when out of range.
func (s *Sequence) Get(col int) byte {
	if col < 0 || col >= len(s.data) {
		return 0
	}
	return s.data[col]
}

// Set overwrites the residue at col. Reports whether col was in range.
func (s *Sequence) Set(col int, ch byte) bool {
	if col < 0 || col >= len(s.data) {
		return false
	}
	s.data[col] = ch
	return true
}

// MakeUpper folds the sequence to uppercase in place.
func (s *Sequence) MakeUpper() {
	s.data = []byte(strings.ToUpper(string(s.data)))
}

// MakeLower folds the sequence to lowercase in place.
func (s *Sequence) MakeLower() {
	s.data = []byte(strings.ToLower(string(s.data)))
}

// ReplaceChar replaces every occurrence of from with to, in place.
// Used for T→U and U→T alphabet conversion.
func (s *Sequence) ReplaceChar(from, to byte) {
	for i, c := range s.data {
		if c == from {
			s.data[i] = to
		}
	}
}

// FileAnnotation is a file-level annotation (#=GF tag value).
type FileAnnotation struct {
	Tag   string
	Value string
}

// SequenceAnnotation is a per-sequence annotation (#=GS seqid tag value).
type SequenceAnnotation struct {
	Tag   string
	Value string
}

// ColumnAnnotation is a per-column annotation (#=GC tag data).
// Data has the same width as the alignment.
type ColumnAnnotation struct {
	Tag  string
	Data string
}

// ResidueAnnotation is a per-residue annotation (#=GR seqid tag data).
type ResidueAnnotation struct {
	Tag  string
	Data string
}

// Alignment is a parsed Stockholm alignment: ordered sequences plus
// annotations. The zero value is an empty, usable alignment.
type Alignment struct {
	FileAnnotations     []FileAnnotation
	Sequences           []*Sequence
	SequenceAnnotations map[string][]SequenceAnnotation
	ColumnAnnotations   []ColumnAnnotation
	ResidueAnnotations  map[string][]ResidueAnnotation
}

// NewAlignment returns an empty alignment.
func NewAlignment() *Alignment {
	return &Alignment{
		SequenceAnnotations: make(map[string][]SequenceAnnotation),
		ResidueAnnotations:  make(map[string][]ResidueAnnotation),
	}
}

// NumSequences returns the number of sequences.
func (a *Alignment) NumSequences() int { return len(a.Sequences) }

// Width returns the alignment width in columns, 0 when empty.
func (a *Alignment) Width() int {
	if len(a.Sequences) == 0 {
		return 0
	}
	return a.Sequences[0].Len()
}

// SSCons returns the consensus secondary-structure annotation and true,
// or "" and false if absent.
func (a *Alignment) SSCons() (string, bool) {
	for _, ann := range a.ColumnAnnotations {
		if ann.Tag == "SS_cons" {
			return ann.Data, true
		}
	}
	return "", false
}

// SetSSCons replaces the SS_cons annotation, appending one if absent.
func (a *Alignment) SetSSCons(data string) {
	for i, ann := range a.ColumnAnnotations {
		if ann.Tag == "SS_cons" {
			a.ColumnAnnotations[i].Data = data
			return
		}
	}
	a.ColumnAnnotations = append(a.ColumnAnnotations, ColumnAnnotation{Tag: "SS_cons", Data: data})
}

// RF returns the reference-sequence annotation and true, or "" and false.
func (a *Alignment) RF() (string, bool) {
	for _, ann := range a.ColumnAnnotations {
		if ann.Tag == "RF" {
			return ann.Data, true
		}
	}
	return "", false
}

// IsValid reports whether all sequences and column annotations share one
// width. An empty alignment is valid.
func (a *Alignment) IsValid() bool {
	if len(a.Sequences) == 0 {
		return true
	}
	width := a.Sequences[0].Len()
	for _, s := range a.Sequences {
		if s.Len() != width {
			return false
		}
	}
	for _, ann := range a.ColumnAnnotations {
		if len(ann.Data) != width {
			return false
		}
	}
	return true
}

// MaxIDLen returns the longest sequence ID length, for output formatting.
func (a *Alignment) MaxIDLen() int {
	max := 0
	for _, s := range a.Sequences {
		if len(s.ID) > max {
			max = len(s.ID)
		}
	}
	return max
}

// SequenceBytes returns the residue data of every sequence, in order, as
// byte slices suitable for the distance and structure layers. The slices
// alias the alignment's data.
func (a *Alignment) SequenceBytes() [][]byte {
	out := make([][]byte, len(a.Sequences))
	for i, s := range a.Sequences {
		out[i] = s.Bytes()
	}
	return out
}

// SequenceIDs returns every sequence ID, in order.
func (a *Alignment) SequenceIDs() []string {
	out := make([]string, len(a.Sequences))
	for i, s := range a.Sequences {
		out[i] = s.ID
	}
	return out
}

// ConvertTU replaces T with U (and t with u) in every sequence.
func (a *Alignment) ConvertTU() {
	for _, s := range a.Sequences {
		s.ReplaceChar('T', 'U')
		s.ReplaceChar('t', 'u')
	}
}

// ConvertUT replaces U with T (and u with t) in every sequence.
func (a *Alignment) ConvertUT() {
	for _, s := range a.Sequences {
		s.ReplaceChar('U', 'T')
		s.ReplaceChar('u', 't')
	}
}
