package pass

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPass writes a shell script that records its arguments and the store
// directory it was started with, one per line.
func stubPass(t *testing.T) (binary, record string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub binary is a shell script")
	}
	dir := t.TempDir()
	record = filepath.Join(dir, "args")
	binary = filepath.Join(dir, "pass")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > '" + record + "'\n" +
		"printf 'store=%s\\n' \"$PASSWORD_STORE_DIR\" >> '" + record + "'\n" +
		"echo done\n"
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary, record
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestInvocationShapes(t *testing.T) {
	assert.Equal(t, []string{"show", "-c", "work/site"}, Show("work/site").Args())
	assert.Equal(t, []string{"generate", "-c", "work/example.org"}, Generate("work/example.org").Args())
	assert.Equal(t, []string{"generate", "-cf", "mail"}, Regenerate("mail").Args())
	assert.Equal(t, "show -c work/site", Show("work/site").String())
}

func TestRunnerPassesArgumentsAndStore(t *testing.T) {
	binary, record := stubPass(t)
	var stdout bytes.Buffer
	runner := Runner{Binary: binary, StoreDir: "/srv/store", Stdout: &stdout}

	handle, err := runner.Start(Generate("work/example.org"))
	require.NoError(t, err)
	assert.Equal(t, Generate("work/example.org"), handle.Invocation())
	assert.Positive(t, handle.Pid())
	require.NoError(t, handle.Wait())

	assert.Equal(t, []string{"generate", "-c", "work/example.org", "store=/srv/store"}, readLines(t, record))
	assert.Equal(t, "done\n", stdout.String())
}

func TestRunnerWithoutStoreDirInheritsEnvironment(t *testing.T) {
	binary, record := stubPass(t)
	t.Setenv("PASSWORD_STORE_DIR", "/from/env")

	require.NoError(t, Runner{Binary: binary, Stdout: &bytes.Buffer{}}.Run(Show("mail")))
	assert.Equal(t, []string{"show", "-c", "mail", "store=/from/env"}, readLines(t, record))
}

func TestWaitReportsNonZeroExit(t *testing.T) {
	falseBin, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false(1) not available")
	}

	err = Runner{Binary: falseBin}.Run(Regenerate("mail"))
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, Regenerate("mail"), toolErr.Invocation)
	assert.Equal(t, 1, toolErr.ExitCode())
	assert.Contains(t, err.Error(), "pass generate -cf mail")
}

func TestStartMissingBinary(t *testing.T) {
	_, err := Runner{Binary: "clip-keeper-no-such-pass"}.Start(Show("x"))
	require.Error(t, err)

	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Equal(t, -1, toolErr.ExitCode())
}

func TestLookPath(t *testing.T) {
	binary, _ := stubPass(t)
	path, err := LookPath(binary)
	require.NoError(t, err)
	assert.Equal(t, binary, path)

	_, err = LookPath("clip-keeper-no-such-pass")
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}
