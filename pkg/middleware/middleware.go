// Package middleware provides the gin middleware stack.
package middleware
