package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCommand executes the root command in isolation and returns its stdout.
func runCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("QFIND_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")

	cmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// searchTree creates a small tree: three default-extension files, one .go file and one .log file.
func searchTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.txt":           "hello foo\nbar\n",
		"b.txt":           "nothing here\n",
		"c.go":            "package foo\n",
		"logs/app.log":    "foo\n",
		"sub/syslog.json": "{}\n",
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestRootCommand(t *testing.T) {
	out, _, err := runCommand(t, "", "--help")
	if err != nil {
		t.Fatalf("--help returned error: %v", err)
	}
	if !strings.Contains(out, "qfind") {
		t.Errorf("Help text should contain 'qfind', got: %s", out)
	}
	for _, flag := range []string{"--ignore-case", "--filenames", "--ext", "--exc", "--dirs", "--simple", "--all"} {
		if !strings.Contains(out, flag) {
			t.Errorf("Help text should document %s", flag)
		}
	}
}

func TestRootCommandVersion(t *testing.T) {
	out, _, err := runCommand(t, "", "--version")
	if err != nil {
		t.Fatalf("--version returned error: %v", err)
	}
	if !strings.Contains(out, "qfind version "+Version) {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestSearchContent(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "foo", "--dirs", root, "--width", "80")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if !strings.Contains(out, " "+filepath.Join(root, "a.txt")) {
		t.Errorf("missing header for a.txt:\n%s", out)
	}
	if !strings.Contains(out, "     1: hello foo") {
		t.Errorf("missing match line:\n%s", out)
	}
	if !strings.Contains(out, "     2: bar") {
		t.Errorf("missing context line:\n%s", out)
	}
	if strings.Contains(out, "c.go") {
		t.Errorf(".go is not a default extension:\n%s", out)
	}
	if !strings.Contains(out, "1 match found in 1 file (3 files scanned - ") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestSearchExtensionFlags(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "foo", "--dirs", root, "--ext", "*", "--exc", "txt")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if strings.Contains(out, "a.txt") {
		t.Errorf("--exc txt should drop a.txt:\n%s", out)
	}
	if !strings.Contains(out, "c.go") || !strings.Contains(out, "app.log") {
		t.Errorf("--ext * should include every other file:\n%s", out)
	}
	if !strings.Contains(out, "2 matches found in 2 files (3 files scanned - ") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestSearchSimpleIgnoreCase(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "-s", "-i", "HELLO", "--dirs", root)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "     1: hello foo") {
		t.Errorf("case-insensitive match missing:\n%s", out)
	}
	if strings.Contains(out, "bar") {
		t.Errorf("simple mode printed context:\n%s", out)
	}
}

func TestSearchNoMatches(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "zzz", "--dirs", root)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.HasPrefix(out, "No matches found (3 files scanned - ") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSearchFilenames(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "-f", "log", "--dirs", root)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	lines := strings.Split(out, "\n")
	want := []string{
		filepath.Join(root, "logs", "app.log"),
		filepath.Join(root, "sub", "syslog.json"),
	}
	if len(lines) < len(want) {
		t.Fatalf("expected at least %d lines, got:\n%s", len(want), out)
	}
	for i, path := range want {
		if lines[i] != path {
			t.Errorf("line %d = %q, want %q", i, lines[i], path)
		}
	}
	if !strings.Contains(out, "2 matches found in 2 files (5 files scanned - ") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestSearchMultipleDirs(t *testing.T) {
	first := searchTree(t)
	second := searchTree(t)

	out, _, err := runCommand(t, "", "hello", "--dirs", first+";"+second, "-s")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "2 matches found in 2 files (6 files scanned - ") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if strings.Index(out, first) > strings.Index(out, second) {
		t.Errorf("roots should be searched in the given order:\n%s", out)
	}
}

func TestSearchPromptsForPattern(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "hello\n", "--dirs", root)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.HasPrefix(out, promptText) {
		t.Errorf("expected prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "1 match found") {
		t.Errorf("prompted pattern not searched:\n%s", out)
	}
}

func TestSearchPromptEOF(t *testing.T) {
	root := searchTree(t)

	out, _, err := runCommand(t, "", "--dirs", root)
	if err != nil {
		t.Fatalf("EOF at the prompt should exit cleanly: %v", err)
	}
	if out != promptText {
		t.Errorf("expected only the prompt, got %q", out)
	}
}

func TestSearchUsesConfigFile(t *testing.T) {
	root := searchTree(t)
	configPath := filepath.Join(t.TempDir(), "qfind.yaml")
	if err := os.WriteFile(configPath, []byte("extensions: [go]\ncontext_lines: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCommand(t, "", "foo", "--dirs", root, "--config", configPath)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "c.go") || strings.Contains(out, "a.txt") {
		t.Errorf("config extensions not applied:\n%s", out)
	}
}

func TestSearchVerboseLogsToStderr(t *testing.T) {
	root := searchTree(t)

	out, errOut, err := runCommand(t, "", "foo", "--dirs", root, "-v")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(errOut, "[DEBUG]") || !strings.Contains(errOut, "starting content search") {
		t.Errorf("expected debug diagnostics on stderr, got %q", errOut)
	}
	if strings.Contains(out, "[DEBUG]") {
		t.Errorf("diagnostics leaked to stdout:\n%s", out)
	}
}

func TestLogLevelFlagIsCaseInsensitive(t *testing.T) {
	root := searchTree(t)

	_, errOut, err := runCommand(t, "", "foo", "--dirs", root, "--log-level", "INFO")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(errOut, "[INFO] ") || !strings.Contains(errOut, "starting content search") {
		t.Errorf("expected run start at info level, got %q", errOut)
	}
}

func TestMissingConfigDirectoryWarns(t *testing.T) {
	t.Setenv("QFIND_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	t.Setenv("NO_COLOR", "1")
	if _, err := os.UserConfigDir(); err == nil {
		t.Skip("user config dir still resolvable on this host")
	}
	root := searchTree(t)

	cmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"foo", "--dirs", root})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("missing config dir should fall back to defaults: %v", err)
	}
	if !strings.Contains(stderr.String(), "[WARN]") || !strings.Contains(stderr.String(), "using defaults") {
		t.Errorf("expected a warning on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "1 match found") {
		t.Errorf("search should still run:\n%s", stdout.String())
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "empty ext list", args: []string{"foo", "--ext", ", ;"}, wantMsg: "--ext argument list is empty."},
		{name: "empty exc list", args: []string{"foo", "--exc", ""}, wantMsg: "--exc argument list is empty."},
		{name: "empty dirs list", args: []string{"foo", "--dirs", ";"}, wantMsg: "--dirs argument list is empty."},
		{name: "missing option argument", args: []string{"foo", "--ext"}, wantMsg: "ext"},
		{name: "unknown flag", args: []string{"foo", "--bogus"}, wantMsg: "bogus"},
		{name: "two patterns", args: []string{"foo", "bar"}, wantMsg: "at most one pattern"},
		{name: "zero context", args: []string{"foo", "--context", "0"}, wantMsg: "--context must be > 0"},
		{name: "negative workers", args: []string{"foo", "--workers", "-1"}, wantMsg: "--workers must be >= 0"},
		{name: "negative width", args: []string{"foo", "--width", "-3"}, wantMsg: "--width must be >= 0"},
		{name: "unknown log level", args: []string{"foo", "--log-level", "loud"}, wantMsg: "--log-level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCommand(t, "", tt.args...)
			if err == nil {
				t.Fatal("expected usage error")
			}
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("error %v (%T) is not a UsageError", err, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if ExitCode(err) != 1 {
				t.Errorf("ExitCode = %d, want 1", ExitCode(err))
			}
		})
	}
}

func TestInvalidPattern(t *testing.T) {
	root := searchTree(t)

	_, _, err := runCommand(t, "", "(unclosed", "--dirs", root)
	if err == nil {
		t.Fatal("expected pattern error")
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
}

func TestInvalidConfiguration(t *testing.T) {
	root := searchTree(t)
	configPath := filepath.Join(t.TempDir(), "qfind.yaml")
	if err := os.WriteFile(configPath, []byte("context_lines: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCommand(t, "", "foo", "--dirs", root, "--config", configPath)
	if err == nil || !strings.Contains(err.Error(), "context_lines") {
		t.Fatalf("expected configuration error, got %v", err)
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		t.Errorf("a bad config file is not a usage error: %v", err)
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("nil error should exit 0")
	}
	if ExitCode(usageErrorf("bad")) != 1 {
		t.Error("usage error should exit 1")
	}
	if ExitCode(errors.New("boom")) != 2 {
		t.Error("other errors should exit 2")
	}
}

func TestParseDirs(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "src", want: []string{"src"}},
		{input: "src;pkg", want: []string{"src", "pkg"}},
		{input: " a , b ;c ", want: []string{"a", "b", "c"}},
		{input: ";,", want: []string{}},
	}
	for _, tt := range tests {
		got := ParseDirs(tt.input)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("ParseDirs(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
