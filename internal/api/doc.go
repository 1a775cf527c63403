// Package api handles incoming HTTP requests, request validation, and
// response formatting. It translates store and domain errors into the
// service's stable JSON error envelope at the process boundary.
package api
