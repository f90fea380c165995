/*
Command rimesplit decomposes Middle Chinese rimes given as arguments.

Usage:

    rimesplit [flags] rime…

Flags:

    -engine grammar|scan   matching engine (default "grammar")
    -lang   tag            language of labels, e.g. "zh" or "en"
    -nfc                   normalize input to NFC first
    -trace  level          trace level: error, info or debug

Flags default to the environment variables RIME_ENGINE, RIME_LOCALE,
RIME_NORMALIZE and RIME_TRACE. Without a locale the user's locale is
detected from the environment.

Every valid rime is printed on a line of its own, together with its parts:

    $ rimesplit ʷɯa uŋ
    ʷɯa	韻頭：ʷɯ 韻腹：a 韻尾：
    uŋ	韻頭： 韻腹：u 韻尾：ŋ

Invalid rimes are reported on stderr and make rimesplit exit with status 1.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/npillmayer/rime"
	"github.com/npillmayer/rime/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Config is read from the environment; flags override it.
type Config struct {
	Engine    string `env:"RIME_ENGINE" env-default:"grammar" env-description:"matching engine: grammar or scan"`
	Locale    string `env:"RIME_LOCALE" env-description:"language of labels"`
	Normalize bool   `env:"RIME_NORMALIZE" env-default:"false" env-description:"normalize input to NFC"`
	Trace     string `env:"RIME_TRACE" env-default:"error" env-description:"trace level"`
}

var errUsage = errors.New("usage: rimesplit [flags] rime…")

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return fmt.Errorf("rimesplit: read env: %w", err)
	}
	flags := flag.NewFlagSet("rimesplit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.Engine, "engine", cfg.Engine, "matching engine: grammar or scan")
	flags.StringVar(&cfg.Locale, "lang", cfg.Locale, "language of labels, e.g. zh or en")
	flags.BoolVar(&cfg.Normalize, "nfc", cfg.Normalize, "normalize input to NFC")
	flags.StringVar(&cfg.Trace, "trace", cfg.Trace, "trace level: error, info or debug")
	flags.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		flags.PrintDefaults()
		help := cleanenv.FUsage(stderr, &cfg, nil)
		help()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}
	gtrace.CoreTracer.SetTraceLevel(traceLevel(cfg.Trace))
	engine, err := selectEngine(cfg.Engine)
	if err != nil {
		return err
	}
	tag := labelLanguage(cfg.Locale)
	label := func(k rime.SegmentKind) string { return k.LabelFor(tag) }
	failed := 0
	for _, input := range flags.Args() {
		if cfg.Normalize {
			input = norm.NFC.String(input)
		}
		parts, err := rime.DecomposeWith(engine, input)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\n", input, parts.Format(label))
	}
	if failed > 0 {
		return fmt.Errorf("rimesplit: %d of %d rimes invalid", failed, flags.NArg())
	}
	return nil
}

func selectEngine(name string) (rime.Engine, error) {
	switch strings.ToLower(name) {
	case "", "grammar", "regexp":
		return rime.GrammarEngine(), nil
	case "scan", "scanner":
		return scanner.Default(), nil
	}
	return nil, fmt.Errorf("rimesplit: unknown engine %q", name)
}

// labelLanguage uses the locale configured, or else the locale of the user.
func labelLanguage(locale string) language.Tag {
	if locale == "" {
		userLocale, err := jj.DetectIETF()
		if err != nil {
			gtrace.CoreTracer.Infof("cannot detect user locale: %v", err)
			return language.Chinese
		}
		gtrace.CoreTracer.Infof("detected user locale %v", userLocale)
		locale = userLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		gtrace.CoreTracer.Errorf("invalid locale %q: %v", locale, err)
		return language.Chinese
	}
	return tag
}

func traceLevel(level string) tracing.TraceLevel {
	switch strings.ToLower(level) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
