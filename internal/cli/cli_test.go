package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidwall/geodesy"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "geodesy.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestInverse(t *testing.T) {
	out, _, err := run(t, "inverse", "51.4778", "0", "48.8567", "2.3508")
	require.NoError(t, err)
	assert.Contains(t, out, "ellipsoid:       WGS84")
	assert.Contains(t, out, "distance:        336426.705 m")
	assert.Contains(t, out, "initial bearing: 149.146108°")
	assert.Contains(t, out, "final bearing:   150.951905°")
	assert.Contains(t, out, "iterations:      4")
}

func TestInverseNegativeArgs(t *testing.T) {
	out, _, err := run(t, "inverse", "--", "-37.95103342", "144.42486789", "-37.65282114", "143.92649554")
	require.NoError(t, err)
	assert.Contains(t, out, "distance:        54972.271 m")
}

func TestInverseAntipodal(t *testing.T) {
	_, _, err := run(t, "inverse", "0", "0", "0", "180")
	require.ErrorIs(t, err, geodesy.ErrFailedConvergence)

	path := writeConfig(t, "spherical_fallback: true\n")
	out, stderr, err := run(t, "--config", path, "inverse", "0", "0", "0", "180")
	require.NoError(t, err)
	assert.Contains(t, out, "ellipsoid:       WGS84/sphere")
	assert.Contains(t, out, "distance:        20015114.352 m")
	assert.Contains(t, stderr, "inverse.fallback")
}

func TestInverseEllipsoidFlag(t *testing.T) {
	out, _, err := run(t, "--ellipsoid", "airy1830", "inverse", "51.4778", "0", "48.8567", "2.3508")
	require.NoError(t, err)
	assert.Contains(t, out, "ellipsoid:       Airy1830")

	_, _, err = run(t, "-e", "Mars2000", "inverse", "0", "0", "1", "1")
	require.ErrorIs(t, err, geodesy.ErrUnknownEllipsoid)
}

func TestInverseBadArgs(t *testing.T) {
	_, _, err := run(t, "inverse", "91", "0", "0", "0")
	require.ErrorIs(t, err, geodesy.ErrInvalidLatitude)

	_, _, err = run(t, "inverse", "north", "0", "0", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid LAT1 "north"`)

	_, _, err = run(t, "inverse", "1", "2", "3")
	require.Error(t, err)
}

func TestDirect(t *testing.T) {
	out, _, err := run(t, "direct", "--", "-37.95103342", "144.42486789", "306.86816", "54972.271")
	require.NoError(t, err)
	assert.Contains(t, out, "end:             -37.652821, 143.926496")
	assert.Contains(t, out, "final bearing:   307.173631°")
}

func TestMidpoint(t *testing.T) {
	path := writeConfig(t, "radius: 6371000\n")
	out, _, err := run(t, "--config", path, "midpoint", "52.205", "0.119", "48.857", "2.351")
	require.NoError(t, err)
	assert.Contains(t, out, "midpoint: 50.536327, 1.274614")
	assert.Contains(t, out, "distance: 404279.164 m")

	_, _, err = run(t, "midpoint", "0", "0", "0", "180")
	require.ErrorIs(t, err, geodesy.ErrUndefinedMidpoint)
}

func TestIntersect(t *testing.T) {
	out, _, err := run(t, "intersect", "51.8853", "0.2545", "108.55", "49.0034", "2.5735", "32.44")
	require.NoError(t, err)
	assert.Contains(t, out, "intersection: 50.90760")
	assert.Contains(t, out, ", 4.508575")
	assert.Contains(t, out, "from first:")
}

func TestEllipsoids(t *testing.T) {
	dir := t.TempDir()
	mars := filepath.Join(dir, "mars.yaml")
	require.NoError(t, os.WriteFile(mars, []byte("ellipsoids:\n  - name: Mars2000\n    a: 3396190\n    rf: 169.8944472\n"), 0o644))
	path := writeConfig(t, "ellipsoid: mars2000\nellipsoid_files: ["+mars+"]\n")

	out, _, err := run(t, "--config", path, "ellipsoids")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, geodesy.StandardRegistry().Len()+2)
	assert.Contains(t, lines[0], "name")
	assert.Contains(t, out, "Mars2000 *")
	assert.Contains(t, out, "298.257223563")
	assert.Contains(t, out, "∞")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--debug", "inverse", "51.4778", "0", "48.8567", "2.3508")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config.loaded")
	assert.Contains(t, stderr, "inverse.done")

	_, stderr, err = run(t, "inverse", "51.4778", "0", "48.8567", "2.3508")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
