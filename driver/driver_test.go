/*
File    : logomix/driver/driver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package driver

import (
	"testing"

	"github.com/akashmaji946/logomix/builtins"
	"github.com/akashmaji946/logomix/env"
	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/iostream"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/akashmaji946/logomix/value"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) (*Driver, *iostream.Stub, *turtle.Stub) {
	t.Helper()
	e := env.New()
	p := proc.NewTable()
	builtins.Register(p)
	tu := turtle.NewStub()
	s := iostream.NewStub()
	ev := eval.NewEvaluator(e, p, tu, s, nil)
	return New(ev), s, tu
}

// spec.md §8 scenario 1: REPEAT 4 [FD 50 RT 90] traces a square.
func TestRepeatSquareTracesFourSides(t *testing.T) {
	d, _, tu := newTestDriver(t)
	_, err := d.Run("repeat 4 [fd 50 rt 90]")
	require.NoError(t, err)
	assert.Len(t, tu.Calls, 8)
	snaps.MatchSnapshot(t, tu.Calls)
}

// spec.md §8 scenario 2: TO SQ defines a squaring procedure.
func TestUserDefinedSquareProcedure(t *testing.T) {
	d, s, _ := newTestDriver(t)
	_, err := d.Run("to sq :n  output :n * :n  end")
	require.NoError(t, err)
	_, err = d.Run("pr sq 10 + 20")
	require.NoError(t, err)
	assert.Equal(t, []string{"900"}, s.Buffer)
}

// spec.md §8 scenario 3: natural arity vs. explicit parenthesized arity.
func TestNaturalVsExplicitArity(t *testing.T) {
	d, s, _ := newTestDriver(t)
	_, err := d.Run("pr sum 1 2")
	require.NoError(t, err)
	_, err = d.Run("pr (sum 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "6"}, s.Buffer)
}

// spec.md §8 scenario 4: dynamic scope across user procedures.
func TestDynamicScopeScenario(t *testing.T) {
	d, s, _ := newTestDriver(t)
	_, err := d.Run("to f  output :x  end")
	require.NoError(t, err)
	_, err = d.Run(`to g  local "x  make "x 9  output f  end`)
	require.NoError(t, err)
	_, err = d.Run(`make "x 5`)
	require.NoError(t, err)
	_, err = d.Run("pr g")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, s.Buffer)
}

// spec.md §8 scenario 5: IFELSE branches on a numeric comparison.
func TestIfelseBigSmall(t *testing.T) {
	d, s, _ := newTestDriver(t)
	_, err := d.Run(`to classify :n  ifelse :n > 10 [output "big] [output "small]  end`)
	require.NoError(t, err)
	_, err = d.Run("pr classify 3")
	require.NoError(t, err)
	_, err = d.Run("pr classify 42")
	require.NoError(t, err)
	assert.Equal(t, []string{"small", "big"}, s.Buffer)
}

// spec.md §8 scenario 6: recursive factorial.
func TestRecursiveFactorial(t *testing.T) {
	d, s, _ := newTestDriver(t)
	_, err := d.Run(`to fact :n  if :n = 0 [output 1]  output :n * fact :n - 1  end`)
	require.NoError(t, err)
	_, err = d.Run("pr fact 5")
	require.NoError(t, err)
	assert.Equal(t, []string{"120"}, s.Buffer)
}

func TestByeStopsFurtherRuns(t *testing.T) {
	d, _, _ := newTestDriver(t)
	_, err := d.Run("bye")
	require.NoError(t, err)
	assert.True(t, d.Stopped())
	_, err = d.Run("pr 1")
	assert.ErrorIs(t, err, ErrStopped{})
}

func TestRunErrorPropagatesWithoutStopping(t *testing.T) {
	d, _, _ := newTestDriver(t)
	_, err := d.Run("pr thing\n")
	require.Error(t, err)
	var logoErr *value.Error
	require.ErrorAs(t, err, &logoErr)
	assert.False(t, d.Stopped())
}
