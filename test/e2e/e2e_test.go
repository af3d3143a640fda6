// Package e2e boots the full HTTP stack with real adapters and exercises
// the endpoints over a live listener.
package e2e

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nathantilsley/toolbox/api"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/chromahl"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/intraline"
	"github.com/nathantilsley/toolbox/internal/diff/adapters/patchdiff"
	"github.com/nathantilsley/toolbox/internal/diff/app"
	"github.com/nathantilsley/toolbox/internal/httpapi"
)

// setupTestServer wires the real service stack, minus GitHub access.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := app.NewService(
		patchdiff.New(),
		intraline.New(),
		chromahl.New("github"),
		nil, // no source: GitHub endpoints answer 503
		log,
		1000,
	)
	handler := httpapi.New(service, log, 8<<20, 4_000_000)

	srv := httptest.NewServer(handler.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestE2E_DiffWorkflow(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/diff", api.DiffRequest{
		Name:     "config.yaml",
		Language: "yaml",
		Original: "replicas: 2\nimage: app:v1\nport: 8080",
		Modified: "replicas: 3\nimage: app:v1\nport: 8080",
		Refine:   true,
		Patch:    true,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	result := decodeJSON[api.DiffResponse](t, resp)

	if result.Stats.Added != 1 || result.Stats.Removed != 1 || result.Stats.Unchanged != 2 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if len(result.Lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(result.Lines))
	}

	// The changed pair carries intraline spans.
	var sawSpans bool
	for _, line := range result.Lines {
		if line.Kind != "unchanged" && len(line.Spans) > 0 {
			sawSpans = true
		}
	}
	if !sawSpans {
		t.Error("no intraline spans on changed lines")
	}

	if !strings.Contains(result.Patch, "@@") {
		t.Errorf("patch has no hunk header: %q", result.Patch)
	}
	if result.Highlight == nil {
		t.Error("yaml highlighting missing")
	}
	if !strings.Contains(result.Unified, "+ replicas: 3") {
		t.Errorf("unified = %q", result.Unified)
	}
}

func TestE2E_DiffLimits(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/diff", api.DiffRequest{
		Original: strings.Repeat("x\n", 2000),
		Modified: "y",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestE2E_GitHubWithoutCredentials(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/diff/github", api.GitHubDiffRequest{
		Owner: "octocat", Repo: "hello-world", PullRequest: 1,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestE2E_ImagePipeline(t *testing.T) {
	srv := setupTestServer(t)

	// A small two-tone source image.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := color.NRGBA{240, 240, 240, 255}
			if x >= 8 {
				c = color.NRGBA{20, 20, 160, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	upload := func(t *testing.T, params map[string]string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("image", "in.png")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if err := png.Encode(fw, img); err != nil {
			t.Fatalf("encode: %v", err)
		}
		for k, v := range params {
			if err := mw.WriteField(k, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
		mw.Close()
		return &buf, mw.FormDataContentType()
	}

	for _, endpoint := range []string{"blur", "dither", "edges", "removebg"} {
		t.Run(endpoint, func(t *testing.T) {
			body, contentType := upload(t, nil)
			resp, err := http.Post(srv.URL+"/v1/image/"+endpoint, contentType, body)
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				raw, _ := io.ReadAll(resp.Body)
				t.Fatalf("status = %d: %s", resp.StatusCode, raw)
			}
			out, err := png.Decode(resp.Body)
			if err != nil {
				t.Fatalf("response is not a png: %v", err)
			}
			if out.Bounds() != img.Bounds() {
				t.Errorf("bounds = %v, want %v", out.Bounds(), img.Bounds())
			}
		})
	}

	t.Run("palette", func(t *testing.T) {
		body, contentType := upload(t, map[string]string{"k": "2"})
		resp, err := http.Post(srv.URL+"/v1/image/palette", contentType, body)
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		palette := decodeJSON[api.PaletteResponse](t, resp)
		if len(palette.Colors) != 2 {
			t.Errorf("colors = %v", palette.Colors)
		}
	})
}

// TestE2E_QRRoundTrip feeds a generated QR code back through an image tool.
func TestE2E_QRRoundTrip(t *testing.T) {
	srv := setupTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/qr", api.QRRequest{Content: "https://example.com", Size: 128})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("qr status = %d", resp.StatusCode)
	}
	qrPNG, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read qr: %v", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "qr.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(qrPNG); err != nil {
		t.Fatalf("write png: %v", err)
	}
	if err := mw.WriteField("k", "2"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	mw.Close()

	resp2, err := http.Post(srv.URL+"/v1/image/palette", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("palette status = %d", resp2.StatusCode)
	}
	palette := decodeJSON[api.PaletteResponse](t, resp2)

	// A QR code is black on white; both must dominate the palette.
	joined := strings.Join(palette.Colors, " ")
	if !strings.Contains(joined, "#ffffff") || !strings.Contains(joined, "#000000") {
		t.Errorf("palette = %v, want black and white", palette.Colors)
	}
}

func TestE2E_TextTools(t *testing.T) {
	srv := setupTestServer(t)

	t.Run("markdown", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/markdown", api.MarkdownRequest{
			Source: "# Hi\n\n- [x] done",
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		md := decodeJSON[api.MarkdownResponse](t, resp)
		if !strings.Contains(md.HTML, "<h1") || !strings.Contains(md.HTML, "checkbox") {
			t.Errorf("html = %q", md.HTML)
		}
	})

	t.Run("stats", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/text/stats", api.TextStatsRequest{Text: "héllo wörld"})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		stats := decodeJSON[api.TextStatsResponse](t, resp)
		if stats.Words != 2 || stats.Runes != 11 {
			t.Errorf("stats = %+v", stats)
		}
	})

	t.Run("convert round trip", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/convert/json-yaml", api.ConvertRequest{
			Input: `{"app":{"name":"toolbox","port":8080}}`,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		yamlOut := decodeJSON[api.ConvertResponse](t, resp)

		resp = postJSON(t, srv.URL+"/v1/convert/yaml-json", api.ConvertRequest{Input: yamlOut.Output})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		jsonOut := decodeJSON[api.ConvertResponse](t, resp)

		var doc map[string]any
		if err := json.Unmarshal([]byte(jsonOut.Output), &doc); err != nil {
			t.Fatalf("round trip produced invalid json: %v", err)
		}
		inner, _ := doc["app"].(map[string]any)
		if inner["name"] != "toolbox" {
			t.Errorf("round trip lost data: %v", doc)
		}
	})
}

func TestE2E_Health(t *testing.T) {
	srv := setupTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if got := strings.TrimSpace(string(body)); got != "ok" {
		t.Errorf("body = %q", got)
	}
}
