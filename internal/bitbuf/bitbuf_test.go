package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetN(t *testing.T) {
	t.Parallel()
	b := New(3 * 5)
	require.Len(t, b.Bytes(), 2)
	for i := 0; i < 5; i++ {
		b.PutN(i*3, 3, uint64(i+2))
	}
	for i := 0; i < 5; i++ {
		require.Equal(t, uint64(i+2), b.GetN(i*3, 3))
	}
	require.NoError(t, FromBytes(b.Bytes()).CheckZero(15, 16))
}

func TestCheckZero(t *testing.T) {
	t.Parallel()
	b := FromBytes([]byte{0x80})
	require.NoError(t, b.CheckZero(0, 7))
	require.Error(t, b.CheckZero(0, 8))
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()
	b := New(4)
	require.Panics(t, func() { b.Put(4, 1) })
	require.Panics(t, func() { b.Get(-1) })
	require.Panics(t, func() { b.GetN(2, 3) })
}
