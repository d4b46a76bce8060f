package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	jsonquery "github.com/Lythenas/json-query"
)

const name = "jsonquery"

const version = "0.0.0"

var revision = "HEAD"

// Exit codes follow the three-way split described in the specification:
// success, an error in the input/selector/apply pipeline, or a usage/CLI
// error, as opposed to the teacher's plain OK/err two-way split.
const (
	exitCodeOK         = 0
	exitCodeDataErr    = 1
	exitCodeCompileErr = 1
	exitCodeApplyErr   = 1
	exitCodeFlagErr    = 2
	exitCodeUsageErr   = 2
)

// flags are parsed by parseFlags (cli/flags.go): named flags are collected
// by their "long"/"short" tags, and the selector/file positional arguments
// fall through into parseFlags' returned rest slice untagged.
type flags struct {
	OnlyParse  bool `short:"p" long:"only-parse" description:"parse the selector and exit without reading input"`
	Debug      bool `short:"d" long:"debug" description:"dump the parsed document and selector program to stderr"`
	Color      bool `short:"C" long:"color" description:"force colored output even when stdout is not a terminal"`
	Monochrome bool `short:"M" long:"monochrome-output" description:"force uncolored output"`
	Help       bool `short:"h" long:"help" description:"print this help and exit"`
}

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer
}

func (c *cli) run(args []string) int {
	var opts flags
	rest, err := parseFlags(args, &opts)
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeFlagErr
	}
	if opts.Help {
		c.printUsage(&opts)
		return exitCodeOK
	}

	switch {
	case opts.Color:
		setMonochrome(false)
	case opts.Monochrome:
		setMonochrome(true)
	default:
		f, ok := c.outStream.(*os.File)
		setMonochrome(!ok || !isatty.IsTerminal(f.Fd()) || os.Getenv("NO_COLOR") != "")
	}

	if len(rest) == 0 {
		fmt.Fprintf(c.errStream, "%s: missing <selector> argument\n", name)
		return exitCodeUsageErr
	}
	if len(rest) > 2 {
		fmt.Fprintf(c.errStream, "%s: too many arguments\n", name)
		return exitCodeUsageErr
	}
	selectorArg := rest[0]

	prog, err := jsonquery.ParseSelector(selectorArg)
	if err != nil {
		se := &selectorError{arg: selectorArg, err: err}
		fmt.Fprint(c.errStream, se.Error()+"\n")
		return se.ExitCode()
	}
	if opts.Debug {
		c.dumpDebug("selector", prog)
	}
	if opts.OnlyParse {
		return exitCodeOK
	}

	fname := "<stdin>"
	in := c.inStream
	if len(rest) == 2 {
		fname = rest[1]
		f, err := os.Open(fname)
		if err != nil {
			fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
			return exitCodeDataErr
		}
		defer f.Close()
		in = f
	}

	contents, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeDataErr
	}
	doc, err := jsonquery.ParseJSON(string(contents))
	if err != nil {
		de := &documentError{fname: fname, err: err}
		fmt.Fprint(c.errStream, de.Error()+"\n")
		return de.ExitCode()
	}
	if opts.Debug {
		c.dumpDebug("document", doc)
	}

	result, warnings, err := jsonquery.Apply(prog, doc)
	for _, w := range warnings {
		fmt.Fprintf(c.errStream, "%s: warning: %s\n", name, w.String())
	}
	if err != nil {
		ae := &applyError{err: err}
		fmt.Fprint(c.errStream, ae.Error()+"\n")
		return ae.ExitCode()
	}

	enc := newEncoder()
	if err := enc.marshal(result, c.outStream); err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeDataErr
	}
	fmt.Fprintln(c.outStream)
	return exitCodeOK
}

func (c *cli) printUsage(opts *flags) {
	fmt.Fprintf(c.outStream, `%[1]s - query a JSON document with a selector expression

Version: %s (rev: %s/%s)

Synopsis:
    %% echo '{"foo": 128}' | %[1]s '."foo"'
    %% %[1]s '."users"[0:2]."name"' users.json

%s`, name, version, revision, runtime.Version(), formatFlags(opts))
}

// dumpDebug YAML-encodes v to stderr, tagged with what it represents.
// Grounded on the teacher's alternate output encoding (cli/yaml.go),
// generalized here into a plain diagnostic dump instead of a second output
// format.
func (c *cli) dumpDebug(label string, v interface{}) {
	b, err := yaml.Marshal(debugDump{label, v})
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: debug: %s\n", name, err)
		return
	}
	c.errStream.Write(b)
}
