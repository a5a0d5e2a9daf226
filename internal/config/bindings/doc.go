// Package bindings loads context bindings from YAML, TOML or Lua files.
//
// Every encoding describes the same document:
//
//	contexts:
//	  - id: Default
//	    bindings:
//	      - raw: key            # key | button | motion | char
//	        key: space          # omit or "*" for any key
//	        state: press        # press | release
//	        modifiers: [shift]
//	        action: Jump
//	      - raw: motion
//	        state_active: Click # only while Click is held
//	        action: Drag
//
// A Lua script returns the same structure as a table (or assigns it to the
// global "bindings"). Scripts run with only the base, table, string and
// math libraries.
//
// Decoded documents are checked against an embedded JSON Schema before
// identifiers are resolved. Load failures are *LoadError values matching
// one of ErrFileNotFound, ErrReadFailed, ErrUTF8 or ErrParse. Bindings
// whose action, key, button or modifier names cannot be resolved are
// dropped and reported as Diagnostics rather than failing the load.
package bindings
