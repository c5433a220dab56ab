/*
File    : logomix/builtins/register.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import "github.com/akashmaji946/logomix/proc"

// Register installs every primitive routine into t, the same role the
// teacher's std package plays for its Builtins slice, split across
// several registerXxx functions by concern instead of one flat list.
func Register(t *proc.Table) {
	registerArith(t)
	registerPredicates(t)
	registerWordsAndLists(t)
	registerVars(t)
	registerIO(t)
	registerControl(t)
	registerDefine(t)
	registerWorkspace(t)
	registerTurtleOps(t)
}
