package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

// maxUploadBytes caps multipart memory buffering; larger parts spill to disk.
const maxUploadBytes = 32 << 20

// AnalyzeResponse is the success payload of the analysis endpoint.
type AnalyzeResponse struct {
	OriginalFilename string      `json:"nombre_archivo_original"`
	StoredFilename   string      `json:"nombre_archivo_guardado"`
	Results          interface{} `json:"resultados"`
}

// handleRoot reports service liveness.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "API de Fitopatología en funcionamiento.",
	})
}

// handleAnalyze receives one leaf image as the multipart field "file",
// persists the original bytes, runs the pipeline, and returns the metrics.
//
// Failure mapping: a non-image upload is a 400; a pipeline failure (decode,
// no tissue, internal fault) is a 500 whose detail carries the pipeline's
// message. A failed analysis never returns partial metrics.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	stored, err := s.store.Save(data, filename)
	if err != nil {
		log.Printf("failed to persist upload %q: %v", filename, err)
		writeDetail(w, http.StatusInternalServerError, "No se pudo guardar el archivo recibido.")
		return
	}

	results := s.analyzer.Analyze(data)
	if !results.Success {
		writeDetail(w, http.StatusInternalServerError,
			fmt.Sprintf("Ocurrió un error al procesar la imagen: %s", results.Error))
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		OriginalFilename: filename,
		StoredFilename:   stored,
		Results:          results,
	})
}

// handleOverlay returns a PNG of the (bounded) input with damaged pixels
// tinted, for visual review of what the thresholds classified.
func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, _, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	out, err := s.analyzer.Overlay(data)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError,
			fmt.Sprintf("Ocurrió un error al procesar la imagen: %s", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		log.Printf("failed to write overlay response: %v", err)
	}
}

// readUpload extracts the "file" multipart part, enforcing an image/* content
// type. On failure it writes the error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeDetail(w, http.StatusBadRequest, "La solicitud no contiene un formulario multipart válido.")
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "Falta el campo de archivo 'file'.")
		return nil, "", false
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeDetail(w, http.StatusBadRequest, "El archivo proporcionado no es una imagen.")
		return nil, "", false
	}

	data, err = io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "No se pudo leer el archivo recibido.")
		return nil, "", false
	}
	return data, header.Filename, true
}
