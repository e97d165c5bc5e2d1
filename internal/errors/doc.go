// Package errors provides structured, actionable error messages for the
// extstats CLI.
//
// Every error carries a code that maps to a short message, a detailed
// explanation and a documentation URL. Errors in input files can point at the
// offending line, which is shown with surrounding context.
//
// # Error Categories
//
//   - markup: malformed page trees (mirrors markup.Fault codes)
//   - config: configuration file errors
//   - data: extension data file errors
//   - store: output store errors
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("D002").
//	    WithLocation("exts.json", 15, 12).
//	    WithSuggestion("Check for a trailing comma")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR D002: Extension data is not valid JSON
//	//
//	//   exts.json:15:12
//	//
//	//     14 │   "name": "Foo",
//	//   → 15 │   "user_count": 12,,
//	//        │                    ^
//	//     16 │ }
//	//
//	//   Hint: Check for a trailing comma
package errors
