// Package app contains the core application logic. It loads a sheet into a
// grid, reports cell values, keeps the grid in sync with the sheet files
// and serves values over HTTP, decoupled from any specific entrypoint.
package app
