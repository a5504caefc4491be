/*
Package logger provides logging functionality to enumfield by defining the required behavior in [Logger]
and providing an implementation of it with [FieldLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [FieldLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*FieldLogger.Warn] and [*FieldLogger.Error] produce messages.

# FieldLogger

Log messages emitted by [FieldLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [DEBUG] enumfield/field.go:143 'rejected enum value' log_context: {"data":{"code":"cannot_resolve_item"},"error":"'ultra_large' must be a value in the enum"}

The log context is a JSON-encoded [*LogContext].
It carries data inessential to the message proper,
such as the value a Field rejected and why.
*/
package logger
