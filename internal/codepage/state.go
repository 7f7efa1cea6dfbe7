package codepage

// LineState records, for a single source line, which code page governs
// decoding of narrow-string bytes (Input) and which governs re-encoding of
// narrow-string output data (Output).
type LineState struct {
	Input  ID
	Output ID
}

// Table tracks the input/output code page in effect at every source line.
// The first "#pragma code_page" seen in a file updates only Input;
// subsequent ones update both Input and Output (spec §3, Code-page state).
type Table struct {
	defaultID   ID
	current     LineState
	seenPragma  bool
	perLine     map[int]LineState
}

// NewTable builds a Table seeded with the command-line default code page,
// which sets both Input and Output from the start.
func NewTable(defaultID ID) *Table {
	return &Table{
		defaultID: defaultID,
		current:   LineState{Input: defaultID, Output: defaultID},
		perLine:   make(map[int]LineState),
	}
}

// Pragma applies a "#pragma code_page(N)" encountered while lexing. It
// changes the current state only; lines marked after the call see the new
// state.
func (t *Table) Pragma(id ID) {
	if !t.seenPragma {
		t.current.Input = id
		t.seenPragma = true
	} else {
		t.current.Input = id
		t.current.Output = id
	}
}

// Snapshot freezes the table's current state, used when entering an
// included file: the include gets a read-only copy of the enclosing file's
// code-page state, per SPEC_FULL's clarification of the included-file
// interaction left open by spec.md §6.
func (t *Table) Snapshot() LineState {
	return t.current
}

// MarkLine records the code-page state in effect for the given source line
// and returns it.
func (t *Table) MarkLine(line int) LineState {
	t.perLine[line] = t.current
	return t.current
}

// AtLine returns the code-page state recorded for a given line, falling
// back to the table's current state if the line was never marked (e.g. a
// diagnostic referring to a not-yet-lexed line).
func (t *Table) AtLine(line int) LineState {
	if st, ok := t.perLine[line]; ok {
		return st
	}
	return t.current
}
