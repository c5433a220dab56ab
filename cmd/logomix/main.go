/*
File    : logomix/cmd/logomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command logomix is an embedding-harness example, not a REPL (spec.md's
// Non-goals exclude an interactive front end): it runs a small fixed set
// of Logo programs against a stub turtle and prints the turtle calls each
// one made, the way a host application would drive the core. Text the
// programs PRINT goes to the interpreter's default stub stream and is not
// shown.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/logomix/logomix"
	"github.com/akashmaji946/logomix/turtle"
)

var samples = []string{
	"repeat 4 [fd 50 rt 90]",
	`to sq :n  output :n * :n  end
pr sq 10 + 20`,
	`to fact :n
if :n = 0 [output 1]
output :n * fact :n - 1
end
pr fact 5`,
}

func main() {
	for i, src := range samples {
		fmt.Printf("--- sample %d ---\n", i+1)
		tu := turtle.NewStub()
		in := logomix.New(logomix.WithTurtle(tu), logomix.WithTraceOutput(os.Stdout))
		if _, err := in.Run(src); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			continue
		}
		for _, call := range tu.Calls {
			fmt.Printf("turtle: %s %v%s\n", call.Method, call.Args, call.Str)
		}
	}
}
