package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ieee0824/oto2seg"
	"github.com/ieee0824/oto2seg/audio"
)

func TestRootCmd(t *testing.T) {
	bank := t.TempDir()
	out := filepath.Join(t.TempDir(), "seg")
	reportPath := filepath.Join(t.TempDir(), "report.yaml")

	clip := audio.Silence(1000, audio.Format{SampleRate: 44100, BitsPerSample: 16, NumChannels: 1})
	require.NoError(t, audio.WriteWAVFile(filepath.Join(bank, "_a.wav"), clip))

	index := "_a.wav=- さ,100,60,-300,40,20\n" +
		"_a.wav=a k,400,60,-200,40,20\n" +
		"_a.wav=a -,700,60,-200,40,20\n" +
		"_a.wav=???,700,60,-200,40,20\n"
	indexPath := filepath.Join(bank, "oto.ini")
	require.NoError(t, os.WriteFile(indexPath, []byte(index), 0o644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		indexPath, out,
		"--encoding", "utf-8",
		"--report", reportPath,
		"--log-level", "error",
		"--env-file", filepath.Join(bank, "absent.env"),
	})
	require.NoError(t, cmd.Execute())

	for _, name := range []string{"rc_sil_s", "vc_a_k", "vr_a_sil"} {
		for _, ext := range []string{".wav", ".seg", ".trans", ".as0"} {
			assert.FileExists(t, filepath.Join(out, name+ext))
		}
	}
	assert.FileExists(t, filepath.Join(out, "vc_a_g.seg"), "a g filled from a k")

	raw, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report oto2seg.Report
	require.NoError(t, yaml.Unmarshal(raw, &report))
	assert.Equal(t, 3, report.Emitted)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "???", report.Failures[0].Alias)
}

func TestRootCmdArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"only-one"})
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}

func TestRootCmdMissingIndex(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "oto.ini"), t.TempDir(), "--log-level", "error"})
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
