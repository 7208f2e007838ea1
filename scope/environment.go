/*
 * Nexus
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package scope implements the lexical environment chain used to resolve
variable bindings at runtime: a linked sequence of frames, one per block
or call, each holding its own bindings and a pointer to its enclosing
frame.
*/
package scope

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/sunshineinc/NexusLang/diag"
)

/*
Environment is one frame of the lexical scope chain. A zero-distance
lookup only consults this frame's own bindings; Get/Assign walk outward
through Enclosing until a binding is found or the chain is exhausted.
*/
type Environment struct {
	Enclosing *Environment
	values    map[string]interface{}
	lock      sync.RWMutex
}

/*
NewEnvironment creates a top-level (global) environment with no enclosing
scope.
*/
func NewEnvironment() *Environment {
	return NewChildEnvironment(nil)
}

/*
NewChildEnvironment creates a new environment enclosed by parent. parent
may be nil to create another top-level environment.
*/
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{Enclosing: parent, values: make(map[string]interface{})}
}

/*
Define binds name to value in this frame. Redefining a name already bound
in THIS frame (not an enclosing one — shadowing a parent binding is legal)
is a fatal configuration error: it means the resolver and the environment
chain have gone out of sync, which the evaluator cannot recover from. This
is reported through sink and the process exits with status 65 (EX_DATAERR,
matching the scanner/parser's own fatal-input exit code), rather than
silently overwriting the earlier binding.
*/
func (e *Environment) Define(name string, value interface{}, line int, sink *diag.Sink) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if _, exists := e.values[name]; exists {
		if sink != nil {
			sink.ReportRuntime(line, fmt.Sprintf("variavel '%s' ja foi definida neste escopo.", name))
		}
		os.Exit(65)
	}
	e.values[name] = value
}

/*
Get looks up name starting in this frame and walking outward. The bool
result is false if no frame in the chain binds name.
*/
func (e *Environment) Get(name string) (interface{}, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()

	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

/*
Assign stores value into the nearest frame (this one or an ancestor) that
already binds name. It reports false, leaving every frame untouched, if
no frame binds name — callers report this as an undefined-variable
runtime error rather than implicitly creating a global.
*/
func (e *Environment) Assign(name string, value interface{}) bool {
	e.lock.Lock()
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		e.lock.Unlock()
		return true
	}
	e.lock.Unlock()

	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return false
}

/*
Ancestor walks distance frames outward (0 returns e itself). Used by
GetAt/AssignAt once static resolution has computed how many scopes away a
binding lives, avoiding the linear walk that Get/Assign perform (see
property: GetAt(resolved distance) == linear-search result).
*/
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance && env != nil; i++ {
		env = env.Enclosing
	}
	return env
}

/*
GetAt reads name from the frame exactly distance scopes outward. The bool
result is false if that frame exists but does not bind name — a resolver
precondition violation, made explicit here rather than fabricating a nil
value as the original implicitly does.
*/
func (e *Environment) GetAt(distance int, name string) (interface{}, bool) {
	env := e.Ancestor(distance)
	if env == nil {
		return nil, false
	}
	env.lock.RLock()
	defer env.lock.RUnlock()
	v, ok := env.values[name]
	return v, ok
}

/*
AssignAt stores value into the frame exactly distance scopes outward. It
reports false, without creating the binding, if that frame does not
already bind name.
*/
func (e *Environment) AssignAt(distance int, name string, value interface{}) bool {
	env := e.Ancestor(distance)
	if env == nil {
		return false
	}
	env.lock.Lock()
	defer env.lock.Unlock()
	if _, ok := env.values[name]; !ok {
		return false
	}
	env.values[name] = value
	return true
}

/*
String renders this frame and its ancestors, innermost first, with sorted
variable names, for debugging.
*/
func (e *Environment) String() string {
	var buf bytes.Buffer
	env := e
	depth := 0
	for env != nil {
		env.lock.RLock()
		names := make([]string, 0, len(env.values))
		for k := range env.values {
			names = append(names, k)
		}
		sort.Strings(names)

		fmt.Fprintf(&buf, "escopo %d {\n", depth)
		for _, n := range names {
			fmt.Fprintf(&buf, "    %s = %v\n", n, env.values[n])
		}
		buf.WriteString("}\n")
		env.lock.RUnlock()

		env = env.Enclosing
		depth++
	}
	return buf.String()
}
