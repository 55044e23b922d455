package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"imagecheck/internal/models"
)

// missingContentType is printed when a response carries no Content-Type header.
const missingContentType = "None"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// Writer implements pipeline.Stage as the final stage, printing one
// tab-separated line per result.
type Writer struct {
	out io.Writer // Destination for report lines
}

// New creates a new Writer that reports to out.
//
// Parameters:
//   - out: Destination for report lines, usually stdout.
//
// Returns:
//   - A pointer to a new Writer instance.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Execute prints results received on the input channel in arrival order.
//
// Parameters:
//   - ctx: Context for cancellation.
//   - input: Channel to receive models.Result values from.
//   - output: Output channel (unused, reporting is the final stage).
//   - logger: Logger for logging progress and errors.
//
// Returns:
//   - An error if writing fails or ctx is canceled, nil otherwise.
func (w *Writer) Execute(ctx context.Context, input <-chan interface{}, output chan<- interface{}, logger *zap.Logger) error {
	okCount := 0
	failCount := 0

	for item := range input {
		select {
		case <-ctx.Done():
			logger.Warn("reporting interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		default:
			res, ok := item.(models.Result)
			if !ok {
				logger.Warn("invalid input type, expected Result", zap.Any("type", item))
				continue
			}

			if _, err := io.WriteString(w.out, FormatLine(res)); err != nil {
				return fmt.Errorf("write report line: %w", err)
			}
			if res.OK() {
				okCount++
			} else {
				failCount++
			}
		}
	}

	logger.Debug("report statistics",
		zap.Int("ok", okCount),
		zap.Int("error", failCount))
	return nil
}

// FormatLine renders res as a newline-terminated report line:
//
//	OK<TAB>status<TAB>content-type<TAB>url
//	ERROR<TAB>description<TAB>url
func FormatLine(res models.Result) string {
	if !res.OK() {
		return fmt.Sprintf("ERROR\t%s\t%s\n", lineBreaks.Replace(res.Err.Error()), res.URL)
	}

	contentType := missingContentType
	if res.HasContentType {
		contentType = res.ContentType
	}
	return fmt.Sprintf("OK\t%d\t%s\t%s\n", res.StatusCode, contentType, res.URL)
}
