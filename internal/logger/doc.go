// Package logger wraps zap to provide a global sugared logger with a
// console encoder, context helpers for carrying a scoped logger through
// call chains, and log level parsing for CLI flags.
package logger
