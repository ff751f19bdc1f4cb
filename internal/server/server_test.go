package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrovision/fitometrics/internal/analysis"
	"github.com/agrovision/fitometrics/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(
		analysis.New(analysis.DefaultConfig()),
		storage.NewUploadStore(t.TempDir()),
	)
}

// testLeafPNG is a 10x10 sample: 3 rows of damaged-toned pixels over 7 rows
// of healthy green, so the expected affected area is exactly 30%.
func testLeafPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 3 {
				img.Set(x, y, color.NRGBA{R: 192, G: 128, B: 64, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{R: 64, G: 192, B: 64, A: 255})
			}
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartUpload builds a multipart body with a single "file" part carrying
// the given content type.
func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &body, mw.FormDataContentType()
}

func postUpload(t *testing.T, srv *Server, path, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, bodyType := multipartUpload(t, filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", bodyType)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRoot(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "OK", body["status"])
}

func TestRoot_UnknownPath(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-path", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyze_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := postUpload(t, srv, "/analizar-muestra/", "hoja.png", "image/png", testLeafPNG(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OriginalFilename string          `json:"nombre_archivo_original"`
		StoredFilename   string          `json:"nombre_archivo_guardado"`
		Results          analysis.Result `json:"resultados"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, "hoja.png", resp.OriginalFilename)
	require.NotEmpty(t, resp.StoredFilename)
	require.True(t, resp.Results.Success)
	require.Equal(t, 30.00, resp.Results.AffectedAreaPct)
	require.Equal(t, 1, resp.Results.LesionCount)
	require.Equal(t, 30.00, resp.Results.AvgLesionSizePx)
}

func TestAnalyze_PersistsUpload(t *testing.T) {
	store := storage.NewUploadStore(t.TempDir())
	srv := New(analysis.New(analysis.DefaultConfig()), store)

	body, bodyType := multipartUpload(t, "hoja.png", "image/png", testLeafPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/analizar-muestra/", body)
	req.Header.Set("Content-Type", bodyType)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.FileExists(t, store.Dir()+"/"+resp.StoredFilename)
}

func TestAnalyze_RejectsNonImage(t *testing.T) {
	srv := newTestServer(t)

	rec := postUpload(t, srv, "/analizar-muestra/", "datos.txt", "text/plain", []byte("hola"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "El archivo proporcionado no es una imagen.", body["detail"])
}

func TestAnalyze_UndecodableImage(t *testing.T) {
	srv := newTestServer(t)

	rec := postUpload(t, srv, "/analizar-muestra/", "roto.png", "image/png", []byte("not a png"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body["detail"], "no se pudo decodificar")
}

func TestAnalyze_MissingFileField(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("otro", "valor"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analizar-muestra/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analizar-muestra/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOverlay_ReturnsPNG(t *testing.T) {
	srv := newTestServer(t)

	rec := postUpload(t, srv, "/analizar-muestra/vista-previa", "hoja.png", "image/png", testLeafPNG(t))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 10, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analizar-muestra/", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
