// Package io decodes JSON, YAML and TOML documents into plain Go values for
// pretty-printing.
//
// # Values
//
// Every format decodes to the same small set of types:
//
//   - objects, mappings and tables become *orderedmap.OrderedMap[string, any]
//     with keys in document order
//   - arrays and sequences become []any
//   - integers become int64 and other numbers float64
//   - strings, booleans and nulls become string, bool and nil
//
// TOML dates and times keep the types the toml package gives them. YAML
// mapping keys that are not strings are converted with fmt.Sprint.
//
// # Import
//
// Use [Decode] to read from any io.Reader, or [Import] to read a file:
//
//	v, err := io.Import("config.yaml", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(pretty.MustFormat(v))
//
// An empty format is inferred from the file extension with [FormatFromPath].
package io
