package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestRunPrintsParts(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, engine := range []string{"grammar", "scan"} {
		var stdout, stderr bytes.Buffer
		err := run([]string{"-engine", engine, "-lang", "zh", "ʷɯa", "uŋ"}, &stdout, &stderr)
		if err != nil {
			t.Fatalf("engine %s: unexpected error %v (%s)", engine, err, stderr.String())
		}
		expected := "ʷɯa\t韻頭：ʷɯ 韻腹：a 韻尾：\nuŋ\t韻頭： 韻腹：u 韻尾：ŋ\n"
		if stdout.String() != expected {
			t.Errorf("engine %s: expected output\n%s\nhave\n%s", engine, expected, stdout.String())
		}
	}
}

func TestRunReportsInvalid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	err := run([]string{"-lang", "en", "iɐp", "abc"}, &stdout, &stderr)
	if err == nil {
		t.Fatalf("expected an error for invalid rime 'abc'")
	}
	if !strings.Contains(stderr.String(), `"abc"`) {
		t.Errorf("expected invalid rime to be reported, stderr is %q", stderr.String())
	}
	if stdout.String() != "iɐp\tonset：i nucleus：ɐ coda：p\n" {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestRunUsage(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err != errUsage {
		t.Errorf("expected usage error, have %v", err)
	}
	if err := run([]string{"-engine", "dfa", "ɑ"}, &stdout, &stderr); err == nil {
		t.Errorf("expected unknown engine to be rejected")
	}
}

func TestLabelLanguage(t *testing.T) {
	if tag := labelLanguage("en-US"); tag.String() != "en-US" {
		t.Errorf("expected en-US, have %v", tag)
	}
	if tag := labelLanguage("!!"); tag != language.Chinese {
		t.Errorf("expected fallback to Chinese for invalid locale, have %v", tag)
	}
}
