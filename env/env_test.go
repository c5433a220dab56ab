/*
File    : logomix/env/env_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/akashmaji946/logomix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeCreatesGlobalWhenNoBindingExists(t *testing.T) {
	e := New()
	e.Make("x", value.NewNumber(5))
	b, ok := e.Lookup("x")
	require.True(t, ok)
	n, _ := value.AsNumber(b.Value)
	assert.Equal(t, 5.0, n)
}

func TestMakeIsCaseInsensitive(t *testing.T) {
	e := New()
	e.Make("Foo", value.NewNumber(1))
	_, ok := e.Lookup("FOO")
	assert.True(t, ok)
	_, ok = e.Lookup("foo")
	assert.True(t, ok)
}

func TestDynamicScopeSeesCallersBinding(t *testing.T) {
	// emulate: make "x 5 / push a frame (callee) / local "x / make "x 9
	e := New()
	e.Make("x", value.NewNumber(5))
	e.Push()
	e.Local("x")
	e.Make("x", value.NewNumber(9))
	b, ok := e.Lookup("x")
	require.True(t, ok)
	n, _ := value.AsNumber(b.Value)
	assert.Equal(t, 9.0, n)
	e.Pop()
	b, ok = e.Lookup("x")
	require.True(t, ok)
	n, _ = value.AsNumber(b.Value)
	assert.Equal(t, 5.0, n, "popping the callee frame restores the caller's binding")
}

func TestMakeDeepCopiesLists(t *testing.T) {
	e := New()
	a := value.NewList(value.NewNumber(1), value.NewNumber(2), value.NewNumber(3))
	e.Make("a", a)
	ab, _ := e.Lookup("a")
	e.Make("b", ab.Value)
	bb, _ := e.Lookup("b")
	bList := bb.Value.(*value.List)
	bList.Items[0] = value.NewNumber(9)

	aAfter, _ := e.Lookup("a")
	aList := aAfter.Value.(*value.List)
	n, _ := value.AsNumber(aList.Items[0])
	assert.Equal(t, 1.0, n, "mutating b's list must not affect a")
}

func TestMakeAliasesArrays(t *testing.T) {
	e := New()
	arr := value.NewArray([]value.Value{value.NewNumber(1), value.NewNumber(2), value.NewNumber(3)}, 1)
	e.Make("a", arr)
	ab, _ := e.Lookup("a")
	e.Make("b", ab.Value)
	bb, _ := e.Lookup("b")
	bArr := bb.Value.(*value.Array)
	bArr.Items[0] = value.NewNumber(9)

	aAfter, _ := e.Lookup("a")
	aArr := aAfter.Value.(*value.Array)
	n, _ := value.AsNumber(aArr.Items[0])
	assert.Equal(t, 9.0, n, "arrays alias across MAKE")
}

func TestGlobalDeclAlwaysTargetsBottomFrame(t *testing.T) {
	e := New()
	e.Push()
	e.GlobalDecl("g")
	e.Pop()
	_, ok := e.Lookup("g")
	assert.True(t, ok)
}

func TestEraseNameRemovesFromEveryFrame(t *testing.T) {
	e := New()
	e.Make("x", value.NewNumber(1))
	e.Push()
	e.LocalMake("x", value.NewNumber(2))
	e.EraseName("x")
	_, ok := e.Lookup("x")
	assert.False(t, ok)
}

func TestPrngIntNWithinRange(t *testing.T) {
	p := NewPrng()
	for i := 0; i < 50; i++ {
		n := p.IntN(10)
		assert.GreaterOrEqual(t, n, int64(0))
		assert.Less(t, n, int64(10))
	}
}
