package raster_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"docread/internal/domain"
	"docread/internal/raster"
)

func newTestImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// buildTestPDF assembles a minimal n-page PDF with a correct xref table.
func buildTestPDF(n int) []byte {
	var buf bytes.Buffer
	var offsets []int
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	kids := make([]string, n)
	for i := 0; i < n; i++ {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n))
	for i := 0; i < n; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] >>\nendobj\n", i+3))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)
	return buf.Bytes()
}

func TestRasterize_SingleImage_OneUnitIndexZero(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)
	data := encodePNG(t, newTestImage(100, 80))

	units, err := r.Rasterize(context.Background(), data, domain.KindImage, 144)

	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, 0, units[0].Index)
	assert.NotEmpty(t, units[0].Image)
	assert.NotEmpty(t, units[0].SourceID)

	decoded, format, err := image.Decode(bytes.NewReader(units[0].Image))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestRasterize_JPEGReencodedAsPNG(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, newTestImage(60, 40), nil))

	units, err := r.Rasterize(context.Background(), buf.Bytes(), domain.KindImage, 144)

	require.NoError(t, err)
	require.Len(t, units, 1)
	_, format, err := image.Decode(bytes.NewReader(units[0].Image))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestRasterize_BMPAndTIFFAccepted(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	var bmpBuf bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpBuf, newTestImage(32, 32)))
	units, err := r.Rasterize(context.Background(), bmpBuf.Bytes(), domain.KindImage, 144)
	require.NoError(t, err)
	assert.Len(t, units, 1)

	var tiffBuf bytes.Buffer
	require.NoError(t, tiff.Encode(&tiffBuf, newTestImage(32, 32), nil))
	units, err = r.Rasterize(context.Background(), tiffBuf.Bytes(), domain.KindImage, 144)
	require.NoError(t, err)
	assert.Len(t, units, 1)
}

func TestRasterize_OversizedImageDownscaled(t *testing.T) {
	r := raster.NewRenderer(200, 200)
	data := encodePNG(t, newTestImage(300, 100))

	units, err := r.Rasterize(context.Background(), data, domain.KindImage, 144)

	require.NoError(t, err)
	decoded, _, err := image.Decode(bytes.NewReader(units[0].Image))
	require.NoError(t, err)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), 200)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 200)
	assert.GreaterOrEqual(t, decoded.Bounds().Dx(), 199)
	assert.InDelta(t, 66, decoded.Bounds().Dy(), 1)
}

func TestRasterize_ImageWithinBoundsUntouched(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)
	data := encodePNG(t, newTestImage(50, 50))

	units, err := r.Rasterize(context.Background(), data, domain.KindImage, 144)

	require.NoError(t, err)
	assert.Equal(t, data, units[0].Image)
}

func TestRasterize_CorruptImage_DecodeError(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	_, err := r.Rasterize(context.Background(), []byte("definitely not an image"), domain.KindImage, 144)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentDecode)
}

func TestRasterize_EmptyInput_DecodeError(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	_, err := r.Rasterize(context.Background(), nil, domain.KindImage, 144)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentDecode)
}

func TestRasterize_UnknownKind_DecodeError(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	_, err := r.Rasterize(context.Background(), []byte("data"), domain.DocumentKind("docx"), 144)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentDecode)
}

func TestRasterize_PDF_AllPagesInOrder(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)
	data := buildTestPDF(3)

	units, err := r.Rasterize(context.Background(), data, domain.KindPDF, 144)

	require.NoError(t, err)
	require.Len(t, units, 3)
	for i, u := range units {
		assert.Equal(t, i, u.Index)
		assert.NotEmpty(t, u.Image)
		assert.Equal(t, units[0].SourceID, u.SourceID)

		decoded, format, err := image.Decode(bytes.NewReader(u.Image))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		// 200pt page at 144 DPI → 200 * 144/72 = 400px
		assert.InDelta(t, 400, decoded.Bounds().Dx(), 2)
		assert.InDelta(t, 400, decoded.Bounds().Dy(), 2)
	}
}

func TestRasterize_PDF_SinglePage(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	units, err := r.Rasterize(context.Background(), buildTestPDF(1), domain.KindPDF, 72)

	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, 0, units[0].Index)
}

func TestRasterize_CorruptPDF_DecodeError(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)

	_, err := r.Rasterize(context.Background(), []byte("this is not a pdf"), domain.KindPDF, 144)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentDecode)
}

func TestRasterize_PDF_ContextCancelled(t *testing.T) {
	r := raster.NewRenderer(2048, 2048)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Rasterize(ctx, buildTestPDF(2), domain.KindPDF, 144)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
