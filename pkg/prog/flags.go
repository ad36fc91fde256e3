package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. It also provides flags that are shared by
// multiple subprograms; they are registered on first use.
type FlagSet struct {
	*flag.FlagSet
	json *bool
}

// JSON returns a pointer to the value of the -json flag, registering it if
// necessary.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show the output from -buildinfo or -compileonly in JSON")
		fs.json = &json
	}
	return fs.json
}
