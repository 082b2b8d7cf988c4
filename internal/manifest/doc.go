// Package manifest turns the extension manifest into its Chrome build copy.
// It decodes the manifest into an order-preserving JSON document, removes a
// single top-level key (by default "applications", the Firefox identity
// block Chrome rejects) and writes the result to the build directory.
package manifest
