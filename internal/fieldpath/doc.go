// internal/fieldpath/doc.go

/*
Package fieldpath names a field inside a resolved scene, using the canonical
format `path`.

The format is a dot-separated sequence of segments, each optionally indexed,
e.g. `layers[0].shapes[2].radius`. Resolution errors and last-known-good
values are keyed by it.
*/
package fieldpath
