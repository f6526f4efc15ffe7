// Package rule wraps struct and field validation on top of
// go-playground/validator.
package rule

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

// initValidator reuses gin's validator engine when available; otherwise a new
// engine is created. Either way the tag name is set to "rule".
func initValidator() {
	if engine := binding.Validator.Engine(); engine != nil {
		if v, ok := engine.(*validator.Validate); ok {
			inst = v
			inst.SetTagName("rule")

			return
		}
	}

	inst = validator.New()
	inst.SetTagName("rule")
}

// lazyInit initializes the global validator (idempotent).
func lazyInit() {
	once.Do(initValidator)
}

// Engine returns the global *validator.Validate, initializing it first when
// needed.
func Engine() *validator.Validate {
	lazyInit()

	return inst
}

// RegisterValidation proxies RegisterValidation, ensuring initialization.
func RegisterValidation(tag string, fn validator.Func, opts ...bool) error {
	lazyInit()

	return inst.RegisterValidation(tag, fn, opts...)
}

// ValidateStruct runs full struct validation and returns the raw error.
func ValidateStruct(s any) error {
	lazyInit()

	return inst.Struct(s)
}

// ValidateVar validates a single variable against a rule expression, for
// example: ValidateVar("abc", "required,email").
func ValidateVar(field any, tag string) error {
	lazyInit()

	return inst.Var(field, tag)
}

// RegisterAlias wraps RegisterAlias for registering rule aliases.
func RegisterAlias(alias, rules string) {
	lazyInit()

	inst.RegisterAlias(alias, rules)
}
