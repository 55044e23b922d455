package filereader

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func drain(t *testing.T, fr *FileReader) ([]string, error) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	inputChan := make(chan interface{})
	outputChan := make(chan interface{}, 100)
	close(inputChan) // FileReader doesn't need input

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := fr.Execute(ctx, inputChan, outputChan, logger)
	close(outputChan)

	urls := []string{}
	for url := range outputChan {
		urls = append(urls, url.(string))
	}
	return urls, err
}

// TestFileReader_Execute tests the Execute method of FileReader.
func TestFileReader_Execute(t *testing.T) {
	tests := []struct {
		name         string
		fileName     string
		content      string
		expectedURLs []string
		expectErr    bool
	}{
		{
			name:         "valid CSV",
			fileName:     "urls.csv",
			content:      "Urls\nhttp://example.com\n\n  http://test.com  \n",
			expectedURLs: []string{"http://example.com", "http://test.com"},
		},
		{
			name:         "empty CSV",
			fileName:     "urls.csv",
			content:      "Urls\n",
			expectedURLs: []string{},
		},
		{
			name:         "yaml sequence",
			fileName:     "urls.yaml",
			content:      "- http://a.example/1.png\n- http://b.example/2.jpg\n",
			expectedURLs: []string{"http://a.example/1.png", "http://b.example/2.jpg"},
		},
		{
			name:         "yaml mapping",
			fileName:     "urls.yml",
			content:      "urls:\n  - http://a.example/1.png\n  - \"\"\n  - http://c.example/3.gif\n",
			expectedURLs: []string{"http://a.example/1.png", "http://c.example/3.gif"},
		},
		{
			name:         "empty yaml",
			fileName:     "urls.yaml",
			content:      "",
			expectedURLs: []string{},
		},
		{
			name:      "yaml scalar",
			fileName:  "urls.yaml",
			content:   "just a string\n",
			expectErr: true,
		},
		{
			name:      "malformed yaml",
			fileName:  "urls.yaml",
			content:   "urls: [unterminated\n",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.fileName, tt.content)

			urls, err := drain(t, New(path))

			if tt.expectErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(urls) != len(tt.expectedURLs) {
				t.Fatalf("expected %d URLs, got %d: %v", len(tt.expectedURLs), len(urls), urls)
			}
			for i, url := range urls {
				if url != tt.expectedURLs[i] {
					t.Errorf("expected URL %s at index %d, got %s", tt.expectedURLs[i], i, url)
				}
			}
		})
	}
}

func TestFileReader_MissingFile(t *testing.T) {
	urls, err := drain(t, New(filepath.Join(t.TempDir(), "nonexistent.csv")))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if len(urls) != 0 {
		t.Errorf("expected no URLs, got %v", urls)
	}
}

func TestFromList_PreservesOrder(t *testing.T) {
	urls, err := drain(t, FromList(DefaultURLs))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != len(DefaultURLs) {
		t.Fatalf("expected %d URLs, got %d", len(DefaultURLs), len(urls))
	}
	for i := range urls {
		if urls[i] != DefaultURLs[i] {
			t.Errorf("index %d: expected %s, got %s", i, DefaultURLs[i], urls[i])
		}
	}
}

func TestFromList_Empty(t *testing.T) {
	urls, err := drain(t, FromList(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("expected no URLs, got %v", urls)
	}
}

func TestFileReader_Canceled(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Unbuffered and never read, so the only way out is the canceled context.
	out := make(chan interface{})
	err := FromList([]string{"http://example.com"}).Execute(ctx, nil, out, logger)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
