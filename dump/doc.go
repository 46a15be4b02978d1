// Package dump renders values as readable text.
//
// # Usage
//
//	v := val.FromEntries(val.ListKind,
//	    val.Entry{Key: keypath.IntKey(0), Value: val.FromString("a")},
//	    val.Entry{Key: keypath.IntKey(2), Value: val.FromString("c")},
//	)
//	fmt.Print(dump.String(v, dump.Compact()))
//	// ["a", 2 => "c"]
//
//	// pretty form, written to any io.Writer
//	err := dump.Dump(v, os.Stdout, dump.Indent("\t"))
//
// # Related Packages
//
//   - github.com/signadot/go-dyn/val - the value model being rendered
package dump
