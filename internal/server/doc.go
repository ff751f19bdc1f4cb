// Package server is the HTTP surface of the leaf analysis service.
//
// It is deliberately thin plumbing: request parsing, upload persistence, CORS,
// and error mapping. All analysis semantics live in the analysis package; the
// server treats it as a black box that turns bytes into a metrics record.
//
// # Endpoints
//
//	GET  /                               liveness probe
//	POST /analizar-muestra/              analyze one uploaded leaf image
//	POST /analizar-muestra/vista-previa  damage overlay PNG for the same upload
//
// Uploads arrive as the multipart field "file" and must declare an image/*
// content type. Error responses use the {"detail": "..."} JSON shape.
package server
