package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/courtside/internal/tuitest"
)

func TestCourtsideOnboardingWalkthrough(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a PTY")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-config", filepath.Join(t.TempDir(), "none.toml")},
		Dir:     cmdDir,
		Env:     []string{"HOME=" + t.TempDir()},
		Width:   100,
		Height:  60,
		Steps: []tuitest.Step{
			{WaitFor: "Encontre Quadras"},
			{Input: tuitest.KeyRight},
			{WaitFor: "Agende Facilmente"},
			{Input: tuitest.KeyRight},
			{WaitFor: "Bem-vindo!"},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if _, ok := rec.FinalFrame(); !ok {
		t.Fatalf("no frames captured")
	}
	for _, want := range []string{"Encontre Quadras", "Agende Facilmente", "Bem-vindo!"} {
		if !rec.Contains(want) {
			t.Fatalf("output never showed %q", want)
		}
	}
}

func TestCourtsideStartScreenFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and drives the binary in a PTY")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "-no-alt-screen", "-screen", "emailVerification", "-config", filepath.Join(t.TempDir(), "none.toml")},
		Dir:     cmdDir,
		Env:     []string{"HOME=" + t.TempDir()},
		Width:   100,
		Height:  60,
		Steps: []tuitest.Step{
			{WaitFor: "Verifique seu Email"},
			{Input: tuitest.KeyEsc},
			{WaitFor: "Bem-vindo!"},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if _, ok := rec.FrameContaining("courtside"); !ok {
		t.Fatalf("status bar never rendered")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "courtside-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
