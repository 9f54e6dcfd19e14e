package stgen

import (
	"bytes"
	"fmt"
	"io"
)

// Header is the two comment lines printed above the table rows
const Header = "//  get0 get1 s00 s01 s10 s11    p(s01)     p(s11)      state  n0,n1\n" +
	"//  ---- ---- --- --- --- --- ----------- -----------   ------ -- --\n"

// String renders the row as an element of a static array literal
func (r Row) String() string {
	return fmt.Sprintf("   [%4d,%4d,%3d,%3d,%3d,%3d,%10du,%10du], // %3d (%d,%d)",
		r.Get0, r.Get1, r.Next[S00], r.Next[S01], r.Next[S10], r.Next[S11],
		r.P01, r.P11, r.Index, r.Pair.N0, r.Pair.N1)
}

// EncodeRows encodes every state of the table in index order
func (t *Table) EncodeRows() ([]Row, error) {
	rows := make([]Row, len(t.States))
	for i := range t.States {
		r, err := EncodeRow(i, &t.States[i])
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}
	return rows, nil
}

// WriteTable renders the header and all rows. Nothing is written to w
// unless every row encodes successfully.
func WriteTable(w io.Writer, t *Table) error {
	rows, err := t.EncodeRows()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(Header)
	for _, r := range rows {
		buf.WriteString(r.String())
		buf.WriteByte('\n')
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return ErrExitCode(ExitCodeOsError, err.Error())
	}
	return nil
}

// Generate builds the state table and writes it to w
func Generate(w io.Writer) (*Table, error) {
	t, err := Build()
	if err != nil {
		return nil, err
	}
	if err := WriteTable(w, t); err != nil {
		return nil, err
	}
	return t, nil
}
