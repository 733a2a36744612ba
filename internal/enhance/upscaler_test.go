package enhance

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestIdentityPreservesDimensions(t *testing.T) {
	src := gocv.NewMatWithSize(120, 80, gocv.MatTypeCV8UC3)
	defer src.Close()

	up := Identity{}
	out, err := up.Upscale(src)
	require.NoError(t, err)
	defer out.Close()

	require.Equal(t, 1, up.Scale())
	require.Equal(t, src.Rows(), out.Rows())
	require.Equal(t, src.Cols(), out.Cols())
	require.NoError(t, up.Close())
}

func TestIdentityReturnsIndependentCopy(t *testing.T) {
	src := gocv.NewMatWithSize(10, 10, gocv.MatTypeCV8UC3)
	defer src.Close()

	out, err := Identity{}.Upscale(src)
	require.NoError(t, err)
	defer out.Close()

	src.SetUCharAt(0, 0, 200)
	require.EqualValues(t, 0, out.GetUCharAt(0, 0))
}

func TestNewFSRCNNMissingWeights(t *testing.T) {
	_, err := NewFSRCNN(filepath.Join(t.TempDir(), "absent.pb"), 4)
	require.Error(t, err)
}

func TestNewFSRCNNRejectsBadScale(t *testing.T) {
	_, err := NewFSRCNN("whatever.pb", 0)
	require.Error(t, err)
}

func TestOpenDegradesToIdentity(t *testing.T) {
	up := Open(filepath.Join(t.TempDir(), "absent.pb"), 4, zerolog.Nop())
	require.IsType(t, Identity{}, up)
	require.Equal(t, 1, up.Scale())
}
