/*
File    : logomix/builtins/workspace_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuryUnburyRoundTrip(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `bury "x`))
	require.NoError(t, err)
	assert.Equal(t, "true", evalText(t, ev, `buriedp "x`))
	_, err = ev.EvalExpression(tokenize(t, `unbury "x`))
	require.NoError(t, err)
	assert.Equal(t, "false", evalText(t, ev, `buriedp "x`))
}

func TestEraseRemovesAUserProcedure(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	p := ev.Procs()
	_, err := ev.EvalExpression(tokenize(t, "to junk output 1 end"))
	require.NoError(t, err)
	assert.True(t, p.IsUserDefined("junk"))
	_, err = ev.EvalExpression(tokenize(t, `erase "junk`))
	require.NoError(t, err)
	assert.False(t, p.IsUserDefined("junk"))
}

func TestErpsOnlyTouchesUserProcedures(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	p := ev.Procs()
	_, err := ev.EvalExpression(tokenize(t, "to junk output 1 end"))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, "erps"))
	require.NoError(t, err)
	assert.False(t, p.IsUserDefined("junk"))
	assert.True(t, p.IsPrimitive("sum"))
}

func TestPpropGpropRemprop(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `(pprop "shapes "square 4)`))
	require.NoError(t, err)
	assert.Equal(t, "4", evalText(t, ev, `gprop "shapes "square`))
	_, err = ev.EvalExpression(tokenize(t, `remprop "shapes "square`))
	require.NoError(t, err)
	assert.Equal(t, "[]", evalText(t, ev, `gprop "shapes "square`))
}

func TestTraceStepToggleWithoutError(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "to noop output 1 end"))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, `trace "noop`))
	require.NoError(t, err)
	assert.True(t, ev.IsProcTraced("noop"))
	_, err = ev.EvalExpression(tokenize(t, `notrace "noop`))
	require.NoError(t, err)
	assert.False(t, ev.IsProcTraced("noop"))
}
