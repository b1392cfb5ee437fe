package framework

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/chores-cli/chores/internal/testutil"
)

const (
	dirPerm  = 0755
	filePerm = 0600
)

type TestEnvironment struct {
	t            *testing.T
	tmpDir       string
	choresBinary string
	cleanup      []func()
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub tools are shell scripts")
	}

	tmpDir := t.TempDir()
	env := &TestEnvironment{
		t:       t,
		tmpDir:  tmpDir,
		cleanup: []func(){},
	}

	env.buildChores()

	return env
}

func (e *TestEnvironment) buildChores() {
	e.t.Helper()

	choresBinary := filepath.Join(e.tmpDir, "chores")
	if prebuilt := os.Getenv("CHORES_E2E_BINARY"); prebuilt != "" {
		choresBinary = prebuilt
		if _, err := os.Stat(choresBinary); err != nil {
			e.t.Fatalf("Specified chores binary not found: %s", choresBinary)
		}
	} else {
		projectRoot := e.findProjectRoot()
		cmd := exec.Command("go", "build", "-o", choresBinary, "./cmd/chores")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build chores binary: %v\nOutput: %s", err, output)
		}
	}

	choresBinary = filepath.Clean(choresBinary)
	if !filepath.IsAbs(choresBinary) {
		absPath, err := filepath.Abs(choresBinary)
		if err != nil {
			e.t.Fatalf("Failed to get absolute path for binary: %v", err)
		}
		choresBinary = absPath
	}

	e.choresBinary = choresBinary
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// CreateProject lays out a minimal Python package with a default
// configuration, ready for stub tools.
func (e *TestEnvironment) CreateProject(name string) *TestProject {
	e.t.Helper()

	project := e.CreateEmptyDir(name)
	e.writeFile(filepath.Join(project.path, "setup.py"),
		"from setuptools import setup\n\nsetup(name=\"mypkg\")\n")
	e.writeFile(filepath.Join(project.path, "mypkg", "__init__.py"), "")
	project.WriteConfig("version: \"1.0\"\npackage: mypkg\n")

	return project
}

// CreateEmptyDir makes a bare project directory with no configuration
// and no package files.
func (e *TestEnvironment) CreateEmptyDir(name string) *TestProject {
	e.t.Helper()

	projectDir := filepath.Join(e.tmpDir, name)
	stubDir := filepath.Join(projectDir, ".stubs")
	if err := os.MkdirAll(stubDir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}

	return &TestProject{
		env:     e,
		path:    projectDir,
		stubDir: stubDir,
		logFile: filepath.Join(stubDir, "invocations.log"),
	}
}

func (e *TestEnvironment) writeFile(path, content string) {
	e.t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func (e *TestEnvironment) TmpDir() string {
	return e.tmpDir
}

func (e *TestEnvironment) Cleanup() {
	for _, fn := range e.cleanup {
		fn()
	}
}

// ExitCode extracts the process exit status from a RunChores error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type TestProject struct {
	env     *TestEnvironment
	path    string
	stubDir string
	logFile string
}

// RunChores runs the built binary inside the project directory. Only the
// stub directory is on PATH, so every tool invocation goes through a stub
// or fails lookup.
func (p *TestProject) RunChores(args ...string) (string, error) {
	return p.RunChoresWithEnv(nil, args...)
}

// RunChoresWithEnv runs the binary with extra environment entries on top
// of the isolated base environment.
func (p *TestProject) RunChoresWithEnv(extra []string, args ...string) (string, error) {
	cmd := exec.Command(p.env.choresBinary, args...)
	cmd.Dir = p.path
	cmd.Env = append(p.commandEnv(), extra...)

	output, err := cmd.CombinedOutput()
	return string(output), err
}

// commandEnv isolates the subprocess from the host: PATH holds only the
// stub directory and inherited CHORES_* settings are dropped.
func (p *TestProject) commandEnv() []string {
	env := []string{
		"PATH=" + p.stubDir,
		"HOME=" + p.env.tmpDir,
	}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "PATH=") ||
			strings.HasPrefix(kv, "HOME=") ||
			strings.HasPrefix(kv, "CHORES_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// StubTool installs a fake tool that records its invocation and exits
// with the given status.
func (p *TestProject) StubTool(tool string, exitCode int) {
	testutil.StubTool(p.env.t, p.stubDir, p.logFile, tool, exitCode)
}

// Invocations returns every stub tool call so far, one "tool args" line
// per call, in order.
func (p *TestProject) Invocations() []string {
	return testutil.ReadInvocations(p.env.t, p.logFile)
}

func (p *TestProject) Path() string {
	return p.path
}

func (p *TestProject) WriteConfig(content string) {
	p.env.writeFile(filepath.Join(p.path, ".chores.yml"), content)
}

func (p *TestProject) WriteFile(path, content string) {
	p.env.writeFile(filepath.Join(p.path, path), content)
}

func (p *TestProject) HasFile(path string) bool {
	_, err := os.Stat(filepath.Join(p.path, path))
	return err == nil
}

func (p *TestProject) ReadFile(path string) string {
	content, err := os.ReadFile(filepath.Join(p.path, path))
	if err != nil {
		p.env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// SourceSnapshot captures the contents of every file outside the stub
// directory, keyed by relative path.
func (p *TestProject) SourceSnapshot() map[string]string {
	p.env.t.Helper()

	snapshot := map[string]string{}
	err := filepath.Walk(p.path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == p.stubDir {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(p.path, path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		snapshot[rel] = string(content)
		return nil
	})
	if err != nil {
		p.env.t.Fatalf("Failed to snapshot project files: %v", err)
	}
	return snapshot
}
