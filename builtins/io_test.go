/*
File    : logomix/builtins/io_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJoinsMultipleArgsWithSpaces(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "(print 1 2 3)"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2 3"}, s.Buffer)
}

func TestTypeHasNoSpaces(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `(type "a "b "c)`))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, s.Buffer)
}

func TestShowBracketsListsUnlikePrint(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "print [a b]"))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, "show [a b]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "[a b]"}, s.Buffer)
}
