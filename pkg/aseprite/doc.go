// Package aseprite decodes and encodes the JSON sprite-sheet format
// exported by the Aseprite image editor.
//
// # Overview
//
// Aseprite exports a sprite sheet as one packed image plus a JSON
// document describing frame geometry, timing, animation tags, layers,
// and slices. This package handles only the JSON document: it decodes
// raw JSON bytes into a strongly validated [SpritesheetData] value and
// re-encodes that value to canonical JSON. Pixel data is never touched;
// loading the packed image is the caller's concern.
//
// # Input Shapes
//
// Aseprite emits the frame list in one of two shapes depending on the
// export settings. Both are accepted:
//
//	"frames": [ {"filename": "run 0.ase", "frame": {...}, ...}, ... ]
//	"frames": { "run 0.ase": {"frame": {...}, ...}, ... }
//
// Array input has a well-defined order contract: the decoded frame
// sequence matches array order exactly. Object input is decoded in
// document order as seen by the token reader, but plain JSON does not
// guarantee object-key order, so consumers must not rely on the frame
// order of object-shaped input beyond stable iteration of the same
// document. Re-encoding always produces the array shape; the object
// shape is decode-only sugar.
//
// # Validation
//
// Decoding is all-or-nothing: any field-level failure aborts the whole
// decode and no partial value is returned. Every failure is a structured
// error from [github.com/spriteops/asejson/pkg/errors] carrying a
// machine-readable code and the dotted path of the offending field.
// Unknown object keys anywhere in the document are ignored, so documents
// from newer Aseprite versions that add fields decode cleanly.
//
// Optional metadata blocks are normalized at the decode boundary:
// frameTags, layers, and slices decode to empty (never nil) slices when
// absent, and always re-encode as []. Scalar optionals (meta.image,
// layer group/opacity/blendMode/color/data, slice-key pivot/center) are
// pointers that are nil exactly when the JSON omitted them.
//
// # Round Trips
//
// For every value v produced by [DecodeBytes], encoding v and decoding
// the result yields a value deeply equal to v. Encoding is canonical:
// the same value always serializes to the same bytes regardless of which
// accepted input shape produced it.
//
// # Concurrency
//
// Decode and encode are pure functions over values they own. Any number
// of calls may run concurrently without coordination.
package aseprite
