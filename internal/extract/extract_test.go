package extract

import (
	"context"
	"testing"
)

func TestCheckFilename(t *testing.T) {
	for _, name := range []string{"report.pdf", "REPORT.PDF", "a.b.pdf"} {
		if err := CheckFilename(name); err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"notes.docx", "sheet.xlsx", "report", "report.pdf.exe"} {
		if err := CheckFilename(name); err != ErrUnsupported {
			t.Fatalf("%s: expected ErrUnsupported, got %v", name, err)
		}
	}
}

func TestPDFTextRejectsGarbage(t *testing.T) {
	if _, err := PDFText(context.Background(), []byte("definitely not a pdf")); err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
}

func TestPDFTextHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := PDFText(ctx, nil); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
