package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// runCLIWithLog is runCLI that also returns everything the logger wrote.
func runCLIWithLog(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestResolveLevel(t *testing.T) {
	tests := []struct {
		verbose    bool
		configured log.Level
		want       log.Level
	}{
		{false, log.InfoLevel, log.InfoLevel},
		{false, log.WarnLevel, log.WarnLevel},
		{false, log.DebugLevel, log.DebugLevel},
		{true, log.WarnLevel, log.DebugLevel},
		{true, log.InfoLevel, log.DebugLevel},
	}
	for _, tt := range tests {
		if got := resolveLevel(tt.verbose, tt.configured); got != tt.want {
			t.Errorf("resolveLevel(%v, %s) = %s, want %s", tt.verbose, tt.configured, got, tt.want)
		}
	}
}

func TestNewLoggerPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogInfo)
	l.Debug("hidden")
	l.Info("shown")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug record written at info level: %q", got)
	}
	if !strings.Contains(got, appName) || !strings.Contains(got, "shown") {
		t.Errorf("log line = %q, want prefix %q and message", got, appName)
	}
}

func TestVerboseShowsDecodeRecords(t *testing.T) {
	isolate(t)

	_, logs, err := runCLIWithLog(t, "decode", "70", "42")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(logs, "decoded") {
		t.Errorf("decoded record logged without -v:\n%s", logs)
	}

	// Length 70 is above the default cache threshold, so the first verbose
	// run computes the permutation and the second reads it back.
	_, logs, err = runCLIWithLog(t, "-v", "decode", "70", "43")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"decoded", "length=70", "big=true", "cached=false"} {
		if !strings.Contains(logs, want) {
			t.Errorf("-v decode logs missing %q:\n%s", want, logs)
		}
	}

	_, logs, err = runCLIWithLog(t, "--verbose", "decode", "70", "43")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "cached=true") {
		t.Errorf("repeated decode not served from cache:\n%s", logs)
	}
}

func TestVerboseShowsEncodeRecords(t *testing.T) {
	isolate(t)

	_, logs, err := runCLIWithLog(t, "-v", "encode", "3,1,0,2")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"encoded", "length=4", "big=false", "cached=false"} {
		if !strings.Contains(logs, want) {
			t.Errorf("-v encode logs missing %q:\n%s", want, logs)
		}
	}
}

func TestConfigLogLevel(t *testing.T) {
	isolate(t)

	debug := writeConfig(t, "[log]\nlevel = \"debug\"\n")
	_, logs, err := runCLIWithLog(t, "--config", debug, "encode", "1,0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "encoded") {
		t.Errorf("log.level = debug did not enable codec records:\n%s", logs)
	}

	warn := writeConfig(t, "[log]\nlevel = \"warn\"\n")
	_, logs, err = runCLIWithLog(t, "--config", warn, "-v", "encode", "1,0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "encoded") {
		t.Errorf("-v should override log.level = warn:\n%s", logs)
	}
}

func TestEnumerateSummary(t *testing.T) {
	isolate(t)

	_, logs, err := runCLIWithLog(t, "enumerate", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "Enumerated 6 of 6 permutations") {
		t.Errorf("enumerate summary missing:\n%s", logs)
	}

	_, logs, err = runCLIWithLog(t, "enumerate", "4", "--limit", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs, "Enumerated 2 of 24 permutations") || !strings.Contains(logs, "elapsed=") {
		t.Errorf("limited enumerate summary = %q", logs)
	}
}

func TestStopwatchDone(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, LogInfo))

	startStopwatch(ctx).done("Rendered cycle diagram", "cycles", 3)

	got := buf.String()
	for _, want := range []string{"Rendered cycle diagram", "cycles=3", "elapsed="} {
		if !strings.Contains(got, want) {
			t.Errorf("stopwatch record missing %q: %q", want, got)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("bare context should yield log.Default()")
	}

	l := newLogger(io.Discard, LogDebug)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("attached logger not returned")
	}
}
