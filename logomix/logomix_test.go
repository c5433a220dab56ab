/*
File    : logomix/logomix_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package logomix

import (
	"testing"

	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsThroughCustomStream(t *testing.T) {
	s := iostream.NewStub()
	in := New(WithStream(s))
	_, err := in.Run("print 1 + 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, s.Buffer)
}

func TestRunDrivesCustomTurtle(t *testing.T) {
	tu := turtle.NewStub()
	in := New(WithTurtle(tu))
	_, err := in.Run("fd 100")
	require.NoError(t, err)
	require.Len(t, tu.Calls, 1)
	assert.Equal(t, "move", tu.Calls[0].Method)
	assert.Equal(t, []float64{100}, tu.Calls[0].Args)
}

func TestTwoInterpretersDoNotShareState(t *testing.T) {
	a := New()
	b := New()
	_, err := a.Run(`make "x 1`)
	require.NoError(t, err)
	_, err = b.Run("print :x")
	require.Error(t, err, "b must not see a's global binding of x")
}
