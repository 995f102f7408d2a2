package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slonegd/gober/ber"
	"github.com/slonegd/gober/internal/hexutil"
)

func TestRunHexInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-hex"}, strings.NewReader("30 80 0c 03 64 65 66 00 00\n05 00\n"), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"[UNIVERSAL 16] SEQUENCE constructed @0\n"+
		"  [UNIVERSAL 12] UTF8String primitive @2 len=3: 646566\n"+
		"[UNIVERSAL 5] NULL primitive @9 len=0\n",
		stdout.String())
}

func TestRunRawFileReencode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.ber")
	require.NoError(t, os.WriteFile(path, hexutil.MustParse("30 05 0c 03 64 65 66"), 0o600))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-reencode", path}, nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "reencoded: 30 80 0c 03 64 65 66 00 00\n")
}

func TestRunConfigFile(t *testing.T) {
	path := writeConfig(t, "input = \"hex\"\nreencode = true\nlog_level = \"debug\"\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-config", path}, strings.NewReader("a0 03 80 01 ff"), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "reencoded: a0 80 80 01 ff 00 00\n")
	assert.Contains(t, stderr.String(), "[CONTEXT 0] constructed length=3 at offset 0")
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "input = \"hex\"\nmax_depth = 10\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", path, "-max-depth", "1"}, strings.NewReader("30 80 30 80 00 00 00 00"), &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, ber.ErrMaxDepthExceeded)

	stdout.Reset()
	err = run([]string{"-config", path, "-hex=false"}, bytes.NewReader([]byte{0x05, 0x00}), &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "[UNIVERSAL 5] NULL primitive @0 len=0\n", stdout.String())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantErr string
		wantIs  error
	}{
		{name: "indefinite primitive", args: []string{"-hex"}, stdin: "04 80", wantIs: ber.ErrInvalidLength},
		{name: "truncated", args: []string{"-hex"}, stdin: "30 80 05 00", wantErr: "decode stdin"},
		{name: "bad hex", args: []string{"-hex"}, stdin: "zz", wantErr: "read stdin: parse hex"},
		{name: "missing file", args: []string{filepath.Join(os.TempDir(), "berdump-missing.ber")}, wantErr: "open input"},
		{name: "bad flag", args: []string{"-nope"}, wantErr: "flag provided but not defined"},
		{name: "bad level", args: []string{"-log-level", "loud"}, wantErr: "parse log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
