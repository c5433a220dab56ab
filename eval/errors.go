/*
File    : logomix/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/logomix/value"
)

// NewError builds a *value.Error stamped with the innermost active
// routine name, mirroring the teacher's Evaluator.CreateError but
// substituting the procedure-stack top for source position, since Logo
// error messages name the offending procedure rather than a line/column
// (spec.md §7 — "{_PROC_}" substitution).
func (e *Evaluator) NewError(format string, a ...interface{}) *value.Error {
	return &value.Error{
		Message: fmt.Sprintf(format, a...),
		Proc:    e.CurrentProc(),
	}
}
