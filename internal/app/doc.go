// Package app contains the core application logic: the App struct, its
// validated configuration, and the load-resolve-write lifecycle, decoupled
// from any specific entrypoint.
package app
