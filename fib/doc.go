// Package fib provides a process-wide, lazily-grown Fibonacci oracle used
// by the rope package's balancing rule: a rope of depth d and edge length
// n is considered balanced when fib(d+2) <= n. Keeping the table shared
// and grow-only means concurrent readers never race with the single
// writer that extends it.
package fib
