package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[classifier]\napi_key = \"test\"\n",
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return configPath
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	if _, _, err := runCLI(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestCLIConfigValidate(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	out, _, err := runCLI(t, "", "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}

func TestCLICorpusImportStatusAndRecommend(t *testing.T) {
	configPath := writeTestConfig(t)

	cfgDir := filepath.Dir(configPath)
	labeledDir := filepath.Join(cfgDir, "data", "labeled", "en")
	if err := os.MkdirAll(labeledDir, 0o755); err != nil {
		t.Fatalf("create labeled dir: %v", err)
	}
	csv := "book,chapter,verse,text,subtitle,emotion,theme\n" +
		"john,3,16,For God so loved the world,,joy,love;faith\n" +
		"john,3,17,For God sent not his Son,,joy,love\n" +
		"psalms,23,1,The Lord is my shepherd,,trust,faith\n"
	if err := os.WriteFile(filepath.Join(labeledDir, "john_emotion_theme.csv"), []byte(csv), 0o644); err != nil {
		t.Fatalf("write labeled csv: %v", err)
	}

	out, _, err := runCLI(t, configPath, "corpus", "import", "--lang", "en")
	if err != nil {
		t.Fatalf("corpus import: %v", err)
	}
	if !strings.Contains(out, "Imported 3 verse(s)") {
		t.Fatalf("unexpected import output: %q", out)
	}

	out, _, err = runCLI(t, configPath, "corpus", "status")
	if err != nil {
		t.Fatalf("corpus status: %v", err)
	}
	if !strings.Contains(out, "en corpus: 3 verse(s)") {
		t.Fatalf("unexpected status output: %q", out)
	}
	if !strings.Contains(out, "joy") || !strings.Contains(out, "trust") {
		t.Fatalf("status output missing emotions: %q", out)
	}

	out, _, err = runCLI(t, configPath, "recommend", "joy", "love")
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if !strings.Contains(out, "john 3:") {
		t.Fatalf("expected a john verse in recommendation output: %q", out)
	}

	out, _, err = runCLI(t, configPath, "recommend", "anger", "fear")
	if err != nil {
		t.Fatalf("recommend no-match: %v", err)
	}
	if !strings.Contains(out, "No verses match") {
		t.Fatalf("unexpected no-match output: %q", out)
	}

	out, _, err = runCLI(t, configPath, "corpus", "clear")
	if err != nil {
		t.Fatalf("corpus clear: %v", err)
	}
	if !strings.Contains(out, "Removed 3 verse(s)") {
		t.Fatalf("unexpected clear output: %q", out)
	}
}

func TestCLIRejectsUnknownLanguage(t *testing.T) {
	configPath := writeTestConfig(t)
	if _, _, err := runCLI(t, configPath, "recommend", "joy", "love", "--lang", "fr"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}
