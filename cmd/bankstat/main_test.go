package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestExecuteMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := execute(nil, &stdout, &stderr)

	if code == 0 {
		t.Error("expected non-zero exit code")
	}
	if !strings.Contains(stderr.String(), usage) {
		t.Errorf("expected usage on stderr, got %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", stdout.String())
	}
}

func TestExecute(t *testing.T) {
	chdir(t, t.TempDir())
	content := "date,description,amount\n2025-08-01,Whole Foods Market,-50\n2025-08-02,Uber Trip,-20\n2025-08-15,Whole Foods,-10\n"
	if err := os.WriteFile("transactions.csv", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"transactions.csv"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}

	report, err := os.ReadFile("category_month_report.csv")
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	expected := "month,category,amount\n2025-08,Groceries,-60.00\n2025-08,Transport,-20.00\n"
	if string(report) != expected {
		t.Errorf("report mismatch:\nExpected:\n%s\nGot:\n%s", expected, report)
	}
	if !strings.Contains(stdout.String(), "Wrote category-by-month report to category_month_report.csv") {
		t.Errorf("expected confirmation line, got %q", stdout.String())
	}
}

func TestExecuteUnreadableInputExitsZero(t *testing.T) {
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"missing.csv"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to read transactions") {
		t.Errorf("expected read failure on stderr, got %q", stderr.String())
	}

	report, err := os.ReadFile("category_month_report.csv")
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if string(report) != "month,category,amount\n" {
		t.Errorf("expected header-only report, got %q", report)
	}
}

func TestExecuteMalformedFieldFails(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("transactions.csv", []byte("date,description,amount\n2025-08-01,Uber,abc\n"), 0644); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"transactions.csv"}, &stdout, &stderr); code == 0 {
		t.Fatal("expected non-zero exit code")
	}
	if n := strings.Count(stderr.String(), "invalid amount"); n != 1 {
		t.Errorf("expected field error once on stderr, got %d times: %q", n, stderr.String())
	}
}

func TestExecuteWithBinaryInWorkingDir(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("bankstat", []byte("\x7fELF\x02\x01\x01\x00"), 0755); err != nil {
		t.Fatalf("Failed to create binary file: %v", err)
	}
	if err := os.WriteFile("transactions.csv", []byte("date,description,amount\n2025-08-01,Uber Trip,-20\n"), 0644); err != nil {
		t.Fatalf("Failed to create input file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"transactions.csv"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", code, stderr.String())
	}

	report, err := os.ReadFile("category_month_report.csv")
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	if string(report) != "month,category,amount\n2025-08,Transport,-20.00\n" {
		t.Errorf("unexpected report %q", report)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}
