package filereader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileReader implements pipeline.Stage as the source of URLs to check.
// It either replays a fixed list or reads one from a CSV or YAML file.
type FileReader struct {
	path string
	urls []string
}

// urlDocument is the mapping form of a YAML URL file.
type urlDocument struct {
	URLs []string `yaml:"urls"`
}

// New creates a FileReader that loads URLs from path.
func New(path string) *FileReader {
	return &FileReader{path: path}
}

// FromList creates a FileReader that emits urls in order.
func FromList(urls []string) *FileReader {
	return &FileReader{urls: urls}
}

// Execute sends every URL to output, preserving source order. The input channel is ignored.
func (fr *FileReader) Execute(ctx context.Context, input <-chan interface{}, output chan<- interface{}, logger *zap.Logger) error {
	urls := fr.urls
	if fr.path != "" {
		var err error
		urls, err = fr.load()
		if err != nil {
			return err
		}
	}

	urlCount := 0
	for _, url := range urls {
		select {
		case <-ctx.Done():
			logger.Warn("url reading interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		case output <- url:
			logger.Debug("read URL", zap.String("url", url))
			urlCount++
		}
	}

	logger.Debug("finished reading URLs", zap.Int("total_urls", urlCount))
	return nil
}

func (fr *FileReader) load() ([]string, error) {
	switch strings.ToLower(filepath.Ext(fr.path)) {
	case ".yaml", ".yml":
		return fr.loadYAML()
	default:
		return fr.loadLines()
	}
}

// loadLines reads a one-column CSV: a header line followed by one URL per line.
func (fr *FileReader) loadLines() ([]string, error) {
	file, err := os.Open(fr.path)
	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	isHeader := true
	var urls []string

	for scanner.Scan() {
		if isHeader {
			isHeader = false
			continue
		}
		url := strings.TrimSpace(scanner.Text())
		if url != "" {
			urls = append(urls, url)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}
	return urls, nil
}

// loadYAML accepts either a bare sequence of URLs or a mapping with a urls key.
func (fr *FileReader) loadYAML() ([]string, error) {
	data, err := os.ReadFile(fr.path)
	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse url file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	var raw []string
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode url list: %w", err)
		}
	case yaml.MappingNode:
		var doc urlDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode url list: %w", err)
		}
		raw = doc.URLs
	default:
		return nil, fmt.Errorf("parse url file: expected a list or a mapping with a urls key")
	}

	urls := make([]string, 0, len(raw))
	for _, u := range raw {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
