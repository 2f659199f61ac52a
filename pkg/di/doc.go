// Package di wires command handlers to their dependencies with a samber/do injector.
//
// A fresh injector is built for every invocation from the runtime's modules, so tests
// can replace any provider by passing an extra module.
package di
