package app

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/clip-keeper/internal/logging"
	"github.com/atomicstack/clip-keeper/internal/menu"
	"github.com/atomicstack/clip-keeper/internal/pass"
	"github.com/atomicstack/clip-keeper/internal/store"
	"github.com/atomicstack/clip-keeper/internal/ui"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{
		".gpg-id",
		"archlinux.org.gpg",
		"mail.gpg",
		"personal/bank.gpg",
		"work/example.org.gpg",
		"work/site1.gpg",
	} {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o600))
	}
	return root
}

// stubPass writes a script that records its arguments to a file next to it.
func stubPass(t *testing.T) (binary, record string) {
	t.Helper()
	dir := t.TempDir()
	binary = filepath.Join(dir, "pass")
	record = filepath.Join(dir, "args")
	script := "#!/bin/sh\necho \"$@\" > " + record + "\n"
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary, record
}

func TestListGolden(t *testing.T) {
	st := store.New(buildStore(t), false, true)
	var buf bytes.Buffer
	require.NoError(t, List(st, &buf))

	g := goldie.New(t)
	g.Assert(t, "list", buf.Bytes())
}

func TestListRejectsEmptyStore(t *testing.T) {
	var buf bytes.Buffer
	err := List(store.New(t.TempDir(), false, true), &buf)
	assert.ErrorIs(t, err, store.ErrStoreEmpty)
	assert.Empty(t, buf.String())
}

func TestRunPreflightMissingStore(t *testing.T) {
	err := Run(Config{StoreDir: filepath.Join(t.TempDir(), "missing"), PassBinary: "pass"})
	assert.ErrorIs(t, err, store.ErrStoreMissing)
}

func TestRunPreflightMissingBinary(t *testing.T) {
	err := Run(Config{StoreDir: buildStore(t), PassBinary: "clip-keeper-no-such-pass"})
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestFinishPrintsRecord(t *testing.T) {
	out := ui.Outcome{Done: true, Result: menu.Result{
		Directive: menu.Exit,
		Record:    &menu.Record{Flow: menu.FlowChange, FileName: "mail", EntryType: menu.UserInput},
	}}
	var buf bytes.Buffer
	require.NoError(t, Finish(out, pass.Runner{}, false, &buf))
	assert.Equal(t, "PASS_CHNG: [PASSWD_FILE_NAME: mail, PASSWD_ENTRY_TYPE: UserInput]\n", buf.String())
}

func TestFinishEchoesAndCancels(t *testing.T) {
	var buf bytes.Buffer
	echo := ui.Outcome{Done: true, Result: menu.Result{Directive: menu.Exit, Echo: menu.QuitLabel}}
	require.NoError(t, Finish(echo, pass.Runner{}, false, &buf))
	assert.Equal(t, "Quit\n", buf.String())

	buf.Reset()
	require.NoError(t, Finish(ui.Outcome{Done: true}, pass.Runner{}, false, &buf))
	assert.Empty(t, buf.String())
}

func TestFinishReturnsSessionError(t *testing.T) {
	sessionErr := errors.New("scan failed")
	var buf bytes.Buffer
	err := Finish(ui.Outcome{Done: true, Err: sessionErr}, pass.Runner{}, false, &buf)
	assert.ErrorIs(t, err, sessionErr)
}

func TestFinishRunsInvocation(t *testing.T) {
	binary, record := stubPass(t)
	inv := pass.Generate("work/site2")
	out := ui.Outcome{Done: true, Result: menu.Result{Directive: menu.Exit, Invocation: &inv}}

	var buf bytes.Buffer
	require.NoError(t, Finish(out, pass.Runner{Binary: binary}, true, &buf))
	assert.Empty(t, buf.String())

	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "generate -c work/site2", strings.TrimSpace(string(got)))
}

func TestFinishWaitReportsToolFailure(t *testing.T) {
	falseBinary, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not available")
	}
	logging.Configure(filepath.Join(t.TempDir(), "clip-keeper.log"))
	inv := pass.Show("mail")
	out := ui.Outcome{Done: true, Result: menu.Result{Directive: menu.Exit, Invocation: &inv}}

	err = Finish(out, pass.Runner{Binary: falseBinary}, true, &bytes.Buffer{})
	var toolErr *pass.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 1, toolErr.ExitCode())
}

func TestRunnerForExportsOnlyForeignRoots(t *testing.T) {
	t.Setenv("PASSWORD_STORE_DIR", "/srv/store")
	assert.Empty(t, runnerFor(Config{StoreDir: "/srv/store"}).StoreDir)
	assert.Equal(t, "/home/alice/.password-store", runnerFor(Config{StoreDir: "/home/alice/.password-store"}).StoreDir)
}
