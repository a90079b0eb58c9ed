// Package render turns a grid and a computed path into something a person
// can look at: an ASCII map with step numbers (Text) or an RGBA image with
// colored tiles and numbered trail markers (Image, WritePNG).
//
// It sits outside the search core and only consumes terrain.Grid and
// search.Path values.
package render
