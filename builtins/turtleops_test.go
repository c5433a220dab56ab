/*
File    : logomix/builtins/turtleops_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardAndRightDelegateToTurtle(t *testing.T) {
	ev, _, tu := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "fd 100"))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, "rt 90"))
	require.NoError(t, err)
	require.Len(t, tu.Calls, 2)
	assert.Equal(t, "move", tu.Calls[0].Method)
	assert.Equal(t, []float64{100}, tu.Calls[0].Args)
	assert.Equal(t, "turn", tu.Calls[1].Method)
	assert.Equal(t, []float64{90}, tu.Calls[1].Args)
}

func TestBackAndLeftNegateTheirInput(t *testing.T) {
	ev, _, tu := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "bk 30"))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, "lt 45"))
	require.NoError(t, err)
	assert.Equal(t, []float64{-30}, tu.Calls[0].Args)
	assert.Equal(t, []float64{-45}, tu.Calls[1].Args)
}

func TestPosReflectsSetxy(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "setxy 3 4"))
	require.NoError(t, err)
	assert.Equal(t, "[3 4]", evalText(t, ev, "pos"))
	assert.Equal(t, "3", evalText(t, ev, "xcor"))
	assert.Equal(t, "4", evalText(t, ev, "ycor"))
}

func TestPenAndVisibilityQueries(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	assert.Equal(t, "true", evalText(t, ev, "pendownp"))
	_, err := ev.EvalExpression(tokenize(t, "pu"))
	require.NoError(t, err)
	assert.Equal(t, "false", evalText(t, ev, "pendownp"))

	assert.Equal(t, "true", evalText(t, ev, "shownp"))
	_, err = ev.EvalExpression(tokenize(t, "ht"))
	require.NoError(t, err)
	assert.Equal(t, "false", evalText(t, ev, "shownp"))
}

func TestSetColorAndReadBack(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `setcolor "red`))
	require.NoError(t, err)
	assert.Equal(t, "red", evalText(t, ev, "pencolor"))
}
