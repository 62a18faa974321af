package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgonek/html-md-converter/converter"
	"github.com/rgonek/html-md-converter/sanitize"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("h2m", flag.ContinueOnError)
	fs.SetOutput(stderr)

	preset := fs.String("preset", "", "Preset: balanced|strict|github (default balanced)")
	configPath := fs.String("config", "", "YAML config file")
	fenced := fs.Bool("fenced", false, "Use fenced code blocks")
	strict := fs.Bool("strict", false, "Fail on unknown tags and malformed tables")
	sanitizeHTML := fs.Bool("sanitize", false, "Reduce the input to supported elements before converting")
	maxDepth := fs.Int("max-depth", 0, "Fail on documents nested deeper than this (0 = unlimited)")
	baseURL := fs.String("base-url", "", "Resolve relative link and image targets against this URL")
	debug := fs.Bool("debug", false, "Log debug diagnostics")
	quiet := fs.Bool("quiet", false, "Only log errors")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: h2m [options] <input-file|->\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	switch {
	case *debug:
		logger.SetLevel(logrus.DebugLevel)
	case *quiet:
		logger.SetLevel(logrus.ErrorLevel)
	}

	var fc *fileConfig
	if *configPath != "" {
		loaded, err := loadFileConfig(*configPath)
		if err != nil {
			logger.Errorf("Invalid config: %v", err)
			return 1
		}
		fc = &loaded
	}

	opts, err := resolveOptions(*preset, fc, flagOverrides{
		Fenced:   *fenced,
		Strict:   *strict,
		Sanitize: *sanitizeHTML,
		MaxDepth: *maxDepth,
		BaseURL:  *baseURL,
	})
	if err != nil {
		logger.Errorf("Invalid preset: %v", err)
		return 1
	}
	opts.Config.Sink = logrusSink{logger: logger}
	if opts.BaseURL != "" {
		hook, err := newBaseURLHook(opts.BaseURL)
		if err != nil {
			logger.Errorf("Invalid config: %v", err)
			return 1
		}
		opts.Config.URLHook = hook
	}

	conv, err := converter.New(opts.Config)
	if err != nil {
		logger.Errorf("Invalid config: %v", err)
		return 1
	}

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		logger.Errorf("Error reading input: %v", err)
		return 1
	}

	input := string(data)
	if opts.Sanitize {
		input = sanitize.HTML(input)
	}

	result, err := conv.ConvertHTML(context.Background(), strings.NewReader(input))
	if err != nil {
		logger.Errorf("Error converting file: %v", err)
		return 1
	}
	logger.Debugf("converted with %d warnings", len(result.Warnings))

	fmt.Fprint(stdout, result.Markdown)
	return 0
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
