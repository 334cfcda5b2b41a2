// Package jsdoc decomposes JSDoc comment blocks into structured records
// and recomposes records back into comment text.
//
// The package exists for tooling that needs to read, programmatically
// edit, and regenerate documentation comments: [Parse] turns one
// already-isolated comment string into a [Comment], the caller mutates
// the Comment freely, and [Compose] renders it back. Composition is
// content-preserving, not byte-preserving: for any Comment c produced by
// Parse, Parse(Compose(c)) equals c field for field, while whitespace
// and line layout are normalized.
//
// # Design Principles
//
//  1. Best-effort parsing: Parse never fails. Unparseable parameter
//     specifications (digit-led names, symbol-only content) are dropped
//     silently, an unclosed {type brace degrades to "no type found,"
//     and unknown tags are captured generically under [Comment.Tags]
//     rather than rejected. Callers needing strict validation layer it
//     on top.
//
//  2. Absent is not empty: a parameter with no type annotation
//     ([Param.Type] == nil) is distinct from one annotated with {}
//     (pointer to ""). Serialized records omit unpopulated fields
//     entirely instead of emitting empty placeholders.
//
//  3. Plain mutable records: a [Comment] is a value graph with public
//     fields and no back-references. [Compose] accepts arbitrarily
//     hand-edited records, including field combinations a real parse
//     never produces, and still renders well-formed output.
//
// # Tag Handling
//
// Recognized tags are dispatched through a static handler table after a
// single alias-resolution step (@return folds to @returns, @arg and
// @argument to @param, @exception to @throws):
//
//   - @param: split into name, {type}, [optional]/=default, and
//     description. Dotted names (options.name) fold one level into the
//     parent's [Param.Properties]; a child seen before its parent
//     fabricates an Object-typed parent in place.
//   - @returns: type and description; the last occurrence wins.
//   - @throws: type and description; every occurrence is kept in order.
//   - @example: raw block with internal line breaks preserved.
//   - @description: appended to the description like free text.
//
// Content of every other tag joins its continuation lines with single
// spaces and lands in [Comment.Tags] under the tag's own name.
//
// # Concurrency
//
// Parse and Compose are pure functions of their input with no shared
// state; they may be called concurrently without coordination.
//
// # Serialization
//
// [Codec] marshals records to JSON or YAML and back, [Schema] publishes
// a JSON Schema of the record shape for non-Go tooling, and [Config]
// bridges CLI flags to a Codec for the jsdoc command.
//
// # Basic Usage
//
//	c := jsdoc.Parse(src)
//	c.Params = append(c.Params, &jsdoc.Param{
//	    Name:        "verbose",
//	    Description: "enable verbose output",
//	})
//	fmt.Println(jsdoc.Compose(c))
package jsdoc
