// Package httpapi exposes the catalog's commands and queries over a small
// REST surface. It translates transport concerns (JSON bodies, status codes,
// correlation headers) into calls on the feature slices and never touches
// storage or the message channel directly.
package httpapi
