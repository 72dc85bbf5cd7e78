package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/jmylchreest/pctnorm/internal/input"
	"github.com/jmylchreest/pctnorm/internal/logger"
	"github.com/jmylchreest/pctnorm/internal/output"
	"github.com/jmylchreest/pctnorm/internal/version"
)

// run executes the CLI with a fresh configuration and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { _ = logger.Init(logger.Options{}) })

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNormalize_Argument(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"percent", []string{"normalize", "12%"}, "0.12\n"},
		{"commas", []string{"normalize", "1,345,678,001,234"}, "1345678001234\n"},
		{"negative_after_dashes", []string{"normalize", "--", "-1"}, "-1\n"},
		{"noisy", []string{"normalize", "--", "-1,345,678,001,234.00%"}, "-13456780012.34\n"},
		{"fold_width", []string{"normalize", "--fold-width", "１２％"}, "0.12\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestNormalize_Stdin(t *testing.T) {
	stdout, stderr, err := run(t, "        0.1  \t        % \n", "normalize")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "0.001\n" {
		t.Errorf("stdout = %q, want %q", stdout, "0.001\n")
	}
	if !strings.Contains(stderr, input.DefaultPrompt) {
		t.Errorf("expected prompt on stderr, got %q", stderr)
	}
}

func TestNormalize_StdinQuiet(t *testing.T) {
	stdout, stderr, err := run(t, "5.\n", "normalize", "-q", "--prompt", "value?")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "5\n" {
		t.Errorf("stdout = %q, want %q", stdout, "5\n")
	}
	if strings.Contains(stderr, "value?") {
		t.Errorf("quiet mode should suppress the prompt, got %q", stderr)
	}
}

func TestNormalize_CustomPrompt(t *testing.T) {
	_, stderr, err := run(t, "1\n", "normalize", "--prompt", "value?")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "value?") {
		t.Errorf("expected custom prompt, got %q", stderr)
	}
}

func TestNormalize_EmptyStdin(t *testing.T) {
	_, _, err := run(t, "", "normalize", "-q")
	if err == nil || !strings.Contains(err.Error(), "no value") {
		t.Fatalf("Execute() error = %v, want no value error", err)
	}
}

func TestNormalize_Failure(t *testing.T) {
	stdout, stderr, err := run(t, "", "normalize", "1%2%")
	if !errors.Is(err, errNormalizationFailed) {
		t.Fatalf("Execute() error = %v, want errNormalizationFailed", err)
	}
	if !strings.HasPrefix(stdout, "error: ") {
		t.Errorf("stdout = %q, want error line", stdout)
	}
	if !strings.Contains(stderr, "kind=malformed_format") {
		t.Errorf("expected failure to be logged, got %q", stderr)
	}
}

func TestNormalize_JSON(t *testing.T) {
	stdout, _, err := run(t, "", "normalize", "--format", "json", "a-bc1345678001234.00%")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var rec output.Record
	if err := json.Unmarshal([]byte(stdout), &rec); err != nil {
		t.Fatalf("failed to parse JSON output %q: %v", stdout, err)
	}
	if rec.Value != "-13456780012.34" || rec.Input != "a-bc1345678001234.00%" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestNormalize_JSONCompact(t *testing.T) {
	stdout, _, err := run(t, "", "normalize", "--format", "json", "--compact", "12%")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := `{"input":"12%","value":"0.12"}` + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestNormalize_JSONIndent(t *testing.T) {
	stdout, _, err := run(t, "", "normalize", "--format", "json", "--indent", "\t", "12%")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "{\n\t\"input\": \"12%\",\n\t\"value\": \"0.12\"\n}\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestNormalize_FullWidthHint(t *testing.T) {
	_, stderr, err := run(t, "", "normalize", "１２％")
	if !errors.Is(err, errNormalizationFailed) {
		t.Fatalf("Execute() error = %v, want errNormalizationFailed", err)
	}
	if !strings.Contains(stderr, "level=WARN") || !strings.Contains(stderr, "--fold-width") {
		t.Errorf("expected a fold-width warning, got %q", stderr)
	}

	_, stderr, err = run(t, "", "normalize", "--fold-width", "１２％")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(stderr, "level=WARN") {
		t.Errorf("unexpected warning with folding enabled: %q", stderr)
	}
}

func TestNormalize_YAMLFailure(t *testing.T) {
	stdout, _, err := run(t, "   \n", "normalize", "-q", "--format", "yaml")
	if !errors.Is(err, errNormalizationFailed) {
		t.Fatalf("Execute() error = %v, want errNormalizationFailed", err)
	}
	if !strings.Contains(stdout, "kind: empty_input") {
		t.Errorf("stdout = %q, want YAML failure record", stdout)
	}
}

func TestNormalize_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "", "normalize", "--format", "xml", "1")
	if err == nil || !strings.Contains(err.Error(), "format") {
		t.Fatalf("Execute() error = %v, want format validation error", err)
	}
}

func TestNormalize_EnvFormat(t *testing.T) {
	t.Setenv("PCTNORM_FORMAT", "json")

	stdout, _, err := run(t, "", "normalize", "12%")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, `"value": "0.12"`) {
		t.Errorf("stdout = %q, want JSON output", stdout)
	}
}

func TestNormalize_TooManyArgs(t *testing.T) {
	if _, _, err := run(t, "", "normalize", "1", "2"); err == nil {
		t.Fatal("expected error for two values")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log-level", "loud", "normalize", "1")
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("Execute() error = %v, want log level error", err)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "pctnorm "+version.String()) {
		t.Errorf("stdout = %q", stdout)
	}

	stdout, _, err = run(t, "", "version", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var info version.Info
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("failed to parse JSON output %q: %v", stdout, err)
	}
	if info.Version != version.Version {
		t.Errorf("Version = %q, want %q", info.Version, version.Version)
	}
}
