package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"

	"docanalyzer-backend/internal/analyses"
	"docanalyzer-backend/internal/bootstrap"
	"docanalyzer-backend/internal/shared/config"
)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{Port: "0", Env: "dev"})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadRejectsMissingFile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	app := newTestApp(t)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "notes.docx", []byte("hello")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected error message")
	}
}

func TestUploadRejectsPathTraversalFilename(t *testing.T) {
	app := newTestApp(t)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "../../etc/passwd.pdf", []byte("x")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUploadRejectsGarbagePDF(t *testing.T) {
	app := newTestApp(t)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "broken.pdf", []byte("this is not a pdf")))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDeleteDocument(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	doc, err := app.DocumentsRepo.Create(ctx, "doomed.pdf", "text", 1000)
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
	if _, err := app.AnalysesRepo.Append(ctx, doc.ID, "{}", 2000); err != nil {
		t.Fatalf("seed analysis: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/documents/"+strconv.FormatInt(doc.ID, 10), nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", resp.Code, resp.Body.String())
	}
	// The delete must take the document's analyses with it.
	if _, err := app.AnalysesRepo.LatestForDocument(ctx, doc.ID); !errors.Is(err, analyses.ErrNotFound) {
		t.Fatalf("expected analyses gone, got %v", err)
	}
}

func TestDeleteDocumentNotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/documents/9999", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeleteDocumentInvalidID(t *testing.T) {
	app := newTestApp(t)

	for _, id := range []string{"abc", "0", "-1"} {
		req := httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)

		if resp.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", id, resp.Code)
		}
	}
}
