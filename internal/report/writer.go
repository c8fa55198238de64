package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/divyakumars/video-summarizer/internal/pipeline"
)

// Write produces <name>.md, <name>.docx and <name>.transcript.docx.
func (w *implWriter) Write(ctx context.Context, name string, result *pipeline.Result) ([]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(w.outputDir, name+".md")
	if err := os.WriteFile(mdPath, []byte(markdown(name, result, time.Now())), 0644); err != nil {
		return nil, fmt.Errorf("write markdown: %w", err)
	}
	paths := []string{mdPath}

	docxPath := filepath.Join(w.outputDir, name+".docx")
	if err := summaryToDocx(name, result.Summary, docxPath); err != nil {
		return paths, fmt.Errorf("write summary docx: %w", err)
	}
	paths = append(paths, docxPath)

	transcriptPath := filepath.Join(w.outputDir, name+".transcript.docx")
	if err := transcriptToDocx(name+" (transcript)", result.Transcript, transcriptPath); err != nil {
		return paths, fmt.Errorf("write transcript docx: %w", err)
	}
	paths = append(paths, transcriptPath)

	w.logger.Info(ctx, "Report written: %s", strings.Join(paths, ", "))
	return paths, nil
}

func markdown(name string, result *pipeline.Result, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n_%s_\n\n", name, now.Format("2006-01-02 15:04"))
	sb.WriteString("## Summary\n\n")
	sb.WriteString(strings.TrimSpace(result.Summary))
	sb.WriteString("\n\n## Transcript\n\n")
	sb.WriteString(strings.TrimSpace(result.Transcript))
	sb.WriteString("\n")
	return sb.String()
}
