/*
File    : logomix/builtins/control_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"testing"

	"github.com/akashmaji946/logomix/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfRunsThenOnlyWhenTrue(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `if "true [print "yes]`))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, `if "false [print "no]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"yes"}, s.Buffer)
}

func TestIfelsePicksOneBranch(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `ifelse greaterp 5 3 [print "big] [print "small]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"big"}, s.Buffer)
}

func TestRepeatAdvancesRepcount(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "repeat 3 [print repcount]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, s.Buffer)
}

func TestForIteratesInclusiveRange(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `for [i 1 3] [print :i]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, s.Buffer)
}

func TestForDefaultsStepToDescendingWhenLimitIsBelowStart(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `for [i 3 1] [print :i]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1"}, s.Buffer)
}

func TestForEvaluatesControlListItemsAsExpressions(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `for [i 1 sum 2 3] [print :i]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, s.Buffer)
}

func TestForExplicitStepIsReevaluatedEachIteration(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `make "step 2`))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, `for [i 0 4 :step] [print :i]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2", "4"}, s.Buffer)
}

func TestWhileLoopsUntilConditionFails(t *testing.T) {
	ev, s, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, `make "i 0`))
	require.NoError(t, err)
	_, err = ev.EvalExpression(tokenize(t, `while [lessp :i 3] [print :i make "i sum :i 1]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, s.Buffer)
}

func TestAndOrShortCircuit(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	assert.Equal(t, "false", evalText(t, ev, `and "false "true`))
	assert.Equal(t, "true", evalText(t, ev, `or "false "true`))
	// The second operand would raise "Division by zero" if it were evaluated.
	assert.Equal(t, "false", evalText(t, ev, `and "false quotient 1 0`))
	assert.Equal(t, "true", evalText(t, ev, `or "true quotient 1 0`))
}

func TestRunExecutesListAndCatchesOutput(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	v, err := ev.EvalExpression(tokenize(t, "run [output 42]"))
	require.NoError(t, err)
	n, _ := value.AsNumber(v)
	assert.Equal(t, 42.0, n)
}

func TestStopInsideRepeatPropagatesToCallUser(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	p := ev.Procs()
	body := tokenize(t, "repeat 5 [print repcount if equalp repcount 2 [stop]]").Rest()
	require.NoError(t, p.DefineUser("runit", nil, body,
		"to runit  repeat 5 [print repcount if equalp repcount 2 [stop]]  end"))
	_, err := ev.EvalExpression(tokenize(t, "runit"))
	require.NoError(t, err, "STOP inside REPEAT must unwind to the enclosing procedure call, not error")
}

func TestCaseFindsMatchingClauseOrElse(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	assert.Equal(t, "2", evalText(t, ev, `(case "b [[[a] 1] [[b] 2] [else 3]])`))
	assert.Equal(t, "3", evalText(t, ev, `(case "z [[[a] 1] [[b] 2] [else 3]])`))
}

func TestCaseEvaluatesMultiAtomRemainderAsAnExpression(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	assert.Equal(t, "5", evalText(t, ev, `(case 1 [[[1] sum 2 3] [else 0]])`))
}

func TestWaitReturnsNoValueAndDoesNotBlockForever(t *testing.T) {
	ev, _, _ := newTestRuntime(t)
	_, err := ev.EvalExpression(tokenize(t, "wait 0"))
	require.NoError(t, err)
}
