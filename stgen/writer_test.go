package stgen

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// goldenSHA256 is the digest of the complete rendered table
const goldenSHA256 = "eb69dbd5d3e050df5f0e0ab57e3a24d5b97bb195f7f10cb9cc15cbcc0d32e911"

func TestGenerateGolden(t *testing.T) {
	var buf bytes.Buffer
	table, err := Generate(&buf)
	require.NoError(t, err)
	assert.Equal(t, 255, table.Len())

	sum := sha256.Sum256(buf.Bytes())
	assert.Equal(t, goldenSHA256, hex.EncodeToString(sum[:]))
}

func TestGenerateRows(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(&buf)
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, Header))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+255)

	expected := map[int]string{
		0:   "   [   0,   0,  0, 51,  0,  1,4294967295u,4294967295u], //   0 (0,0)",
		1:   "   [   0,   4,  1, 52,  1,  2,4294967295u,4294967295u], //   1 (0,1)",
		50:  "   [   0,1020, 21, 72, 50, 50,4294967295u,         0u], //  50 (0,255)",
		103: "   [   2,   1,103,124, 52, 53,4294967295u,4294967295u], // 103 (2,1)",
		126: "   [   1,   1,124,135, 54, 55,4294967295u,4294967295u], // 126 (3,3)",
		251: "   [ 896,   0,251,253,191,192, 138547332u,4294967295u], // 251 (224,0)",
		254: "   [ 255,   1,254,254,195,196,         0u,4294967295u], // 254 (255,1)",
	}
	for i, want := range expected {
		assert.Equal(t, want, lines[2+i], "row %d", i)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	_, err := Generate(&a)
	require.NoError(t, err)
	_, err = Generate(&b)
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), b.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteTableWriteError(t *testing.T) {
	table := buildTable(t)
	err := WriteTable(failingWriter{}, table)
	stErr, ok := IsStateTableError(err)
	require.True(t, ok)
	assert.Equal(t, ExitCodeOsError, stErr.Code)
	assert.Contains(t, stErr.Message, "disk full")
}

func TestWriteTableNoPartialOutput(t *testing.T) {
	table := &Table{States: []State{
		{Pair: Pair{N0: 0, N1: 0}},
		{Pair: Pair{N0: 300, N1: 0}},
	}}
	var buf bytes.Buffer
	err := WriteTable(&buf, table)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
