package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paramdoc/internal/docmodel"
	"paramdoc/internal/extract"
	"paramdoc/internal/manifest"
)

const classManifest = `
declarations:
  - name: ntp
    kind: class
    file: manifests/init.pp
    line: 1
    docstring: |
      Installs and configures NTP.
      @param servers [String] The servers to use.
      @param legacy No longer used.
    parameters:
      - name: servers
        type: Array[String]
      - name: iburst
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ntp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(classManifest), 0o644))

	return path
}

func TestCheck_StorePackage(t *testing.T) {
	out, _, err := execute(t, "check", "paramdoc/store")
	require.NoError(t, err)

	assert.Contains(t, out, "The @param tag for parameter 'coupon' has no matching parameter")
	assert.Contains(t, out, "[redundant_param_type]")
	assert.Contains(t, out, "Missing @param tag for parameter 'prices'")
	assert.Contains(t, out, "5 declarations, 4 warnings\n")
}

func TestCheck_Strict(t *testing.T) {
	_, _, err := execute(t, "check", "--strict", "paramdoc/store")
	require.Error(t, err)
	assert.ErrorIs(t, err, extract.ErrWarnings)
}

func TestCheck_PackageErrors(t *testing.T) {
	_, _, err := execute(t, "check", "paramdoc/does/not/exist")
	require.Error(t, err)
}

func TestManifest_TextReport(t *testing.T) {
	out, _, err := execute(t, "manifest", "--show", writeManifest(t))
	require.NoError(t, err)

	assert.Contains(t, out, "ntp defined (manifests/init.pp:1)\n")
	assert.Contains(t, out, "  @param servers [Array[String]] The servers to use.\n")
	assert.Contains(t, out, "  @param iburst [Any]\n")
	assert.Contains(t, out, "1 declaration, 3 warnings\n")
}

func TestManifest_Write(t *testing.T) {
	src := writeManifest(t)
	dst := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := execute(t, "manifest", "--format", "json", "--write", dst, src)
	require.NoError(t, err)

	f, err := manifest.LoadFile(dst)
	require.NoError(t, err)
	require.Len(t, f.Declarations, 1)
	assert.Equal(t, "class", f.Declarations[0].Kind)

	entities := f.Entities()
	assert.Equal(t, []string{"Array[String]"}, entities[0].FindTag(docmodel.TagParam, "servers").Types)
	assert.Equal(t, []string{"Any"}, entities[0].FindTag(docmodel.TagParam, "iburst").Types)
	assert.Nil(t, entities[0].FindTag(docmodel.TagParam, "legacy").Types)
}

func TestManifest_StrictStillWrites(t *testing.T) {
	src := writeManifest(t)
	dst := filepath.Join(t.TempDir(), "out.yaml")

	_, _, err := execute(t, "manifest", "--strict", "-w", dst, src)
	require.ErrorIs(t, err, extract.ErrWarnings)
	assert.FileExists(t, dst)
}

func TestManifest_Missing(t *testing.T) {
	_, _, err := execute(t, "manifest", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestManifest_Dump(t *testing.T) {
	_, stderr, err := execute(t, "manifest", "--dump", writeManifest(t))
	require.NoError(t, err)

	assert.Contains(t, stderr, "docmodel.Entity")
	assert.Contains(t, stderr, `"iburst"`)
}

func TestManifest_LogLevelWarn(t *testing.T) {
	_, stderr, err := execute(t, "manifest", "--log-level", "warn", writeManifest(t))
	require.NoError(t, err)

	assert.Contains(t, stderr, `"code":"orphan_param_tag"`)
}

func TestUnsupportedFormat(t *testing.T) {
	_, _, err := execute(t, "manifest", "--format", "xml", writeManifest(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "paramdoc dev\n", out)
}
