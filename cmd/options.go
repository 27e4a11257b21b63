package cmd

import "github.com/geminitools/tomlcheck/checker"

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.  The tool takes a single optional positional
// argument naming the document to validate and no named flags, so that a
// bare invocation keeps checking the baked-in Gemini command file.
type Options struct {
	Args struct {
		Location string `positional-arg-name:"location" description:"TOML document to validate"`
	} `positional-args:"yes"`
}

// Location resolves the document location, falling back to the default when
// none was supplied.
func (o *Options) Location() string {
	if o.Args.Location != "" {
		return o.Args.Location
	}
	return checker.DefaultLocation
}
