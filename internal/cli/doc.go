// Package cli implements the logfacade command: a thin command-line
// front end over the default registry, useful for checking which backend
// a deployment selects and how thresholds resolve for a logger name.
package cli
