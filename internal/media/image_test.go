package media

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func encodedTestImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))
	return buf.Bytes()
}

func TestValidateFilename(t *testing.T) {
	p := NewProcessor(1080, 320, 10<<20)

	for _, name := range []string{"photo.jpg", "photo.JPEG", "pic.png", "anim.gif"} {
		require.NoError(t, p.ValidateFilename(name), name)
	}
	for _, name := range []string{"doc.pdf", "script.sh", "noext", "photo.jpg.exe"} {
		require.ErrorIs(t, p.ValidateFilename(name), ErrUnsupportedType, name)
	}
}

func TestProcess_SquareOutputs(t *testing.T) {
	p := NewProcessor(100, 32, 10<<20)
	src := encodedTestImage(t, 400, 300, imaging.PNG)

	main, thumb, err := p.Process(bytes.NewReader(src))
	require.NoError(t, err)

	mainImg, err := imaging.Decode(bytes.NewReader(main))
	require.NoError(t, err)
	require.Equal(t, 100, mainImg.Bounds().Dx())
	require.Equal(t, 100, mainImg.Bounds().Dy())

	thumbImg, err := imaging.Decode(bytes.NewReader(thumb))
	require.NoError(t, err)
	require.Equal(t, 32, thumbImg.Bounds().Dx())
	require.Equal(t, 32, thumbImg.Bounds().Dy())

	// thumbnail carries fewer pixels, so it should be the smaller payload
	require.Less(t, len(thumb), len(main))
}

func TestProcess_RejectsOversizedUpload(t *testing.T) {
	src := encodedTestImage(t, 200, 200, imaging.JPEG)
	p := NewProcessor(100, 32, int64(len(src)-1))

	_, _, err := p.Process(bytes.NewReader(src))
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestProcess_RejectsNonImageData(t *testing.T) {
	p := NewProcessor(100, 32, 10<<20)

	_, _, err := p.Process(strings.NewReader("definitely not an image"))
	require.ErrorIs(t, err, ErrUnsupportedType)
}
