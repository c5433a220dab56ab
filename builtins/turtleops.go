/*
File    : logomix/builtins/turtleops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"github.com/akashmaji946/logomix/eval"
	"github.com/akashmaji946/logomix/proc"
	"github.com/akashmaji946/logomix/turtle"
	"github.com/akashmaji946/logomix/value"
)

func numArg(run eval.Runtime, args []value.Value, i int) (float64, error) {
	return asNumber(run, args[i])
}

func registerTurtleOps(t *proc.Table) {
	move := func(sign float64) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			run := rt(r)
			n, err := numArg(run, args, 0)
			if err != nil {
				return nil, err
			}
			run.Turtle().Move(sign * n)
			return nil, nil
		}
	}
	t.RegisterPrimitive("forward", proc.FixedArity(1), move(1))
	t.RegisterPrimitive("fd", proc.FixedArity(1), move(1))
	t.RegisterPrimitive("back", proc.FixedArity(1), move(-1))
	t.RegisterPrimitive("bk", proc.FixedArity(1), move(-1))

	turn := func(sign float64) proc.NativeFunc {
		return func(r interface{}, args []value.Value) (value.Value, error) {
			run := rt(r)
			n, err := numArg(run, args, 0)
			if err != nil {
				return nil, err
			}
			run.Turtle().Turn(sign * n)
			return nil, nil
		}
	}
	t.RegisterPrimitive("right", proc.FixedArity(1), turn(1))
	t.RegisterPrimitive("rt", proc.FixedArity(1), turn(1))
	t.RegisterPrimitive("left", proc.FixedArity(1), turn(-1))
	t.RegisterPrimitive("lt", proc.FixedArity(1), turn(-1))

	t.RegisterPrimitive("setpos", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		l, err := asList(run, args[0])
		if err != nil || len(l.Items) != 2 {
			return nil, run.NewError("SETPOS expects a [x y] list")
		}
		x, err := asNumber(run, l.Items[0])
		if err != nil {
			return nil, err
		}
		y, err := asNumber(run, l.Items[1])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetPosition(&x, &y)
		return nil, nil
	})
	t.RegisterPrimitive("setxy", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		x, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		y, err := numArg(run, args, 1)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetPosition(&x, &y)
		return nil, nil
	})
	t.RegisterPrimitive("setheading", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetHeading(n)
		return nil, nil
	})
	t.RegisterPrimitive("seth", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetHeading(n)
		return nil, nil
	})
	t.RegisterPrimitive("home", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().Home()
		return nil, nil
	})
	t.RegisterPrimitive("arc", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		angle, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		radius, err := numArg(run, args, 1)
		if err != nil {
			return nil, err
		}
		run.Turtle().Arc(angle, radius)
		return nil, nil
	})

	t.RegisterPrimitive("pos", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		x, y := rt(r).Turtle().GetXY()
		return value.NewList(value.NewNumber(x), value.NewNumber(y)), nil
	})
	t.RegisterPrimitive("xcor", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		x, _ := rt(r).Turtle().GetXY()
		return value.NewNumber(x), nil
	})
	t.RegisterPrimitive("ycor", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		_, y := rt(r).Turtle().GetXY()
		return value.NewNumber(y), nil
	})
	t.RegisterPrimitive("heading", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(rt(r).Turtle().GetHeading()), nil
	})
	t.RegisterPrimitive("towards", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		l, err := asList(run, args[0])
		if err != nil || len(l.Items) != 2 {
			return nil, run.NewError("TOWARDS expects a [x y] list")
		}
		x, err := asNumber(run, l.Items[0])
		if err != nil {
			return nil, err
		}
		y, err := asNumber(run, l.Items[1])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(run.Turtle().Towards(x, y)), nil
	})

	t.RegisterPrimitive("showturtle", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().ShowTurtle()
		return nil, nil
	})
	t.RegisterPrimitive("st", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().ShowTurtle()
		return nil, nil
	})
	t.RegisterPrimitive("hideturtle", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().HideTurtle()
		return nil, nil
	})
	t.RegisterPrimitive("ht", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().HideTurtle()
		return nil, nil
	})
	t.RegisterPrimitive("shownp", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return boolWord(rt(r).Turtle().IsTurtleVisible()), nil
	})

	t.RegisterPrimitive("clean", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().Clear()
		return nil, nil
	})
	t.RegisterPrimitive("clearscreen", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().ClearScreen()
		return nil, nil
	})
	t.RegisterPrimitive("cs", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().ClearScreen()
		return nil, nil
	})

	t.RegisterPrimitive("setturtlemode", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		m, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetTurtleMode(turtle.Mode(m))
		return nil, nil
	})
	t.RegisterPrimitive("getturtlemode", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewWord(string(rt(r).Turtle().GetTurtleMode())), nil
	})

	t.RegisterPrimitive("fill", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().Fill()
		return nil, nil
	})
	t.RegisterPrimitive("beginpath", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().BeginPath()
		return nil, nil
	})
	t.RegisterPrimitive("fillpath", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		c, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().FillPath(c)
		return nil, nil
	})
	t.RegisterPrimitive("label", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().DrawText(args[0].Print())
		return nil, nil
	})

	t.RegisterPrimitive("setfontsize", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetFontSize(n)
		return nil, nil
	})
	t.RegisterPrimitive("getfontsize", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(rt(r).Turtle().GetFontSize()), nil
	})
	t.RegisterPrimitive("setfontname", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetFontName(n)
		return nil, nil
	})
	t.RegisterPrimitive("getfontname", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewWord(rt(r).Turtle().GetFontName()), nil
	})

	t.RegisterPrimitive("pendown", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().PenDown()
		return nil, nil
	})
	t.RegisterPrimitive("pd", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().PenDown()
		return nil, nil
	})
	t.RegisterPrimitive("penup", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().PenUp()
		return nil, nil
	})
	t.RegisterPrimitive("pu", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		rt(r).Turtle().PenUp()
		return nil, nil
	})
	t.RegisterPrimitive("pendownp", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return boolWord(rt(r).Turtle().IsPenDown()), nil
	})
	t.RegisterPrimitive("setpenmode", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		m, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetPenMode(turtle.PenMode(m))
		return nil, nil
	})
	t.RegisterPrimitive("getpenmode", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewWord(string(rt(r).Turtle().GetPenMode())), nil
	})

	setColor := func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		c, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetColor(c)
		return nil, nil
	}
	t.RegisterPrimitive("setpencolor", proc.FixedArity(1), setColor)
	t.RegisterPrimitive("setcolor", proc.FixedArity(1), setColor)
	t.RegisterPrimitive("pencolor", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewWord(rt(r).Turtle().GetColor()), nil
	})
	t.RegisterPrimitive("setbackground", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		c, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetBgColor(c)
		return nil, nil
	})
	t.RegisterPrimitive("setbg", proc.FixedArity(1), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		c, err := asText(run, args[0])
		if err != nil {
			return nil, err
		}
		run.Turtle().SetBgColor(c)
		return nil, nil
	})
	t.RegisterPrimitive("getbg", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewWord(rt(r).Turtle().GetBgColor()), nil
	})

	setWidth := func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		n, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetWidth(n)
		return nil, nil
	}
	t.RegisterPrimitive("setpensize", proc.FixedArity(1), setWidth)
	t.RegisterPrimitive("setwidth", proc.FixedArity(1), setWidth)
	t.RegisterPrimitive("getpensize", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		return value.NewNumber(rt(r).Turtle().GetWidth()), nil
	})

	t.RegisterPrimitive("setscrunch", proc.FixedArity(2), func(r interface{}, args []value.Value) (value.Value, error) {
		run := rt(r)
		x, err := numArg(run, args, 0)
		if err != nil {
			return nil, err
		}
		y, err := numArg(run, args, 1)
		if err != nil {
			return nil, err
		}
		run.Turtle().SetScrunch(x, y)
		return nil, nil
	})
	t.RegisterPrimitive("scrunch", proc.FixedArity(0), func(r interface{}, args []value.Value) (value.Value, error) {
		x, y := rt(r).Turtle().GetScrunch()
		return value.NewList(value.NewNumber(x), value.NewNumber(y)), nil
	})
}
