package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code int }

func (e *codedError) Error() string { return "coded" }

func TestAsType_FindsWrappedTarget(t *testing.T) {
	base := &codedError{code: 7}
	err := Wrap(Wrapf(base, "inner %d", 1), "outer")

	got, ok := AsType[*codedError](err)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)
	assert.Equal(t, base, Cause(err))
}

func TestAsType_Missing(t *testing.T) {
	_, ok := AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWithMessagef_KeepsChain(t *testing.T) {
	base := New("base")
	err := WithMessagef(base, "while %s", "loading")

	assert.True(t, Is(err, base))
	assert.Equal(t, "while loading: base", err.Error())
}
