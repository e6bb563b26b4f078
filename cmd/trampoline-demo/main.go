// Command trampoline-demo exercises the trampoline engine and its
// reference matcher library against a small built-in grammar, in the
// same flag-driven, log.Fatal-on-error style as the teacher's own
// cmd/main.go.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/clarete/trample/matchers"
	"github.com/clarete/trample/trace"
	"github.com/clarete/trample/trampoline"
	"github.com/clarete/trample/value"
)

func main() {
	var (
		inputPath = flag.String("input", "", "Path to the input file (default: stdin)")
		grammar   = flag.String("grammar", "greeting", "Built-in grammar: greeting, try")
		cache     = flag.Bool("cache", false, "Enable the memoizing trampoline variant")
		try       = flag.Bool("try", false, "Enable Try-scope/expiration semantics")
		debug     = flag.Bool("debug", false, "Emit a dispatch trace to stderr")
		color     = flag.Bool("color", false, "Colorize the printed result")
	)
	flag.Parse()

	input, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("Can't read input: %s", err.Error())
	}

	g, err := demoGrammar(*grammar)
	if err != nil {
		log.Fatal(err.Error())
	}

	opts := trampoline.Options{Cache: *cache, Try: *try}
	src := trampoline.NewSourceFromString(input)
	if *debug {
		opts.Trace = trace.NewWriter(os.Stderr, src)
	}

	res, err := trampoline.Parse(g, strings.NewReader(input), opts)
	if err != nil {
		log.Fatalf("Parse aborted: %s", err.Error())
	}
	if !res.Ok {
		log.Fatalf("No match: %s", res.FailureSummary())
	}

	theme := value.Plain
	if *color {
		theme = value.ANSI
	}
	value.Fprint(os.Stdout, res.Value, theme)
	os.Stdout.WriteString("\n")
}

func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	return string(data), err
}

// demoGrammar builds one of two small built-in grammars: "greeting"
// matches a literal followed by up to two characters joined to a
// string, and "try" demonstrates backtracking across a failed Try.
func demoGrammar(name string) (trampoline.Matcher, error) {
	switch name {
	case "greeting":
		return matchers.Sequence(
			matchers.Literal("hello "),
			matchers.Join(matchers.Repeat(0, 2, matchers.Dot())),
		), nil
	case "try":
		return matchers.Alternative(
			trampoline.NewTry(matchers.Literal("ab")),
			matchers.Literal("ac"),
		), nil
	default:
		return nil, &trampoline.ConfigError{Message: "unknown demo grammar: " + name}
	}
}
