package caster

import (
	"fmt"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/influxqs/types"
)

// NewExprCaster compiles expression into a caster. The raw parameter text is
// bound to the variable value, for example:
//
//	float(value) * 100
//	upper(trim(value))
func NewExprCaster(expression string) (Caster, error) {
	program, err := expr.Compile(expression, expr.Env(map[string]any{"value": ""}))
	if err != nil {
		return nil, fmt.Errorf("compile caster expression %q: %w", expression, err)
	}
	return exprCaster(program), nil
}

func exprCaster(program *vm.Program) Caster {
	return func(text string) (types.Value, error) {
		out, err := expr.Run(program, map[string]any{"value": text})
		if err != nil {
			return types.Value{}, err
		}
		return types.ValueOf(out)
	}
}

// CompileExprCasters compiles a name -> expression table. Names are
// compiled in sorted order so the first failure is reported deterministically.
func CompileExprCasters(expressions map[string]string) (map[string]Caster, error) {
	names := make([]string, 0, len(expressions))
	for name := range expressions {
		names = append(names, name)
	}
	sort.Strings(names)
	casters := make(map[string]Caster, len(expressions))
	for _, name := range names {
		c, err := NewExprCaster(expressions[name])
		if err != nil {
			return nil, fmt.Errorf("caster %s: %w", name, err)
		}
		casters[name] = c
	}
	return casters, nil
}
