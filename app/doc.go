/*
Package app wires extensions into a runnable application.

Router dispatches messages to handlers by their path, ChainDecorators wraps
a handler with a stack of decorators, and Executor runs raw transactions
against a committed store, one at a time.
*/
package app
