package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/chazu/strata/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error raised by a builtin.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for voxel-script evaluation. It
// is safe for concurrent use: each call to Evaluate builds a fresh
// sandboxed environment so results never depend on prior state.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine returns an idle Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs source and returns the solid produced by its final
// (emit ...) call.
//
// Return semantics:
//   - success: solid + nil errors + nil error
//   - parse/eval failure: nil solid + eval errors + nil error
//   - fatal failure (timeout, panic): nil + nil + error
func (e *Engine) Evaluate(source string) (*kernel.VoxelSolid, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		s, evalErrs, err := e.evaluate(source)
		ch <- evalResult{solid: s, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

func (e *Engine) evaluate(source string) (*kernel.VoxelSolid, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return kernel.New(), nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	result := &emitted{}
	registerBuiltins(env, result)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	if _, err := env.Run(); err != nil {
		return nil, parseZygomysError(err), nil
	}

	if result.solid == nil {
		return nil, []EvalError{{Message: "program did not call (emit solid)"}}, nil
	}
	return result.solid, nil, nil
}

var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
