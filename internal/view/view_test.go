package view

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatThousands(t *testing.T) {
	cases := map[float64]string{
		0:        "0.00",
		12.5:     "12.50",
		1234:     "1,234.00",
		12345.6:  "12,345.60",
		1234567:  "1,234,567.00",
		-9876.54: "-9,876.54",
	}
	for in, want := range cases {
		if got := formatThousands(in); got != want {
			t.Errorf("formatThousands(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFuncsDateHandlesNil(t *testing.T) {
	fm := Funcs(nil)
	date := fm["date"].(func(*time.Time) string)
	if got := date(nil); got != "" {
		t.Errorf("date(nil) = %q, want empty", got)
	}
	d := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := date(&d); got != "9 Mar 2026" {
		t.Errorf("date = %q", got)
	}
}

func TestFuncsCurrency(t *testing.T) {
	fm := Funcs(nil)
	currency := fm["currency"].(func(any) string)
	if got := currency(2335.0); got != "$2,335.00" {
		t.Errorf("currency = %q", got)
	}
	if got := currency("junk"); got != "$0.00" {
		t.Errorf("currency on non-number = %q", got)
	}
}

func TestRenderUsesConfiguredBaseDir(t *testing.T) {
	dir := t.TempDir()
	layout := `<html><body>{{block "content" .}}{{end}}</body></html>`
	page := `{{define "content"}}<p>{{.Message}}</p>{{end}}`
	if err := os.WriteFile(filepath.Join(dir, "layout.html"), []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "page.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}
	SetBaseDir(dir)
	t.Cleanup(ResetForTests)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Render(rec, r, "page.html", map[string]any{"Message": "kia ora"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "<p>kia ora</p>") {
		t.Fatalf("page not rendered inside layout: %s", rec.Body.String())
	}
}

func TestDictPairsValues(t *testing.T) {
	fm := Funcs(nil)
	dict := fm["dict"].(func(...any) map[string]any)
	m := dict("A", 1, "B", "two")
	if m["A"] != 1 || m["B"] != "two" {
		t.Fatalf("dict = %#v", m)
	}
	if dict("odd") != nil {
		t.Fatal("odd argument count should return nil")
	}
}
