package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-server/internal/model"
)

// Renderer rasterizes HTML into a PDF document.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ExportsRepo persists export job bookkeeping. Implementations tolerate an
// absent database; persistence is best-effort.
type ExportsRepo interface {
	Save(ctx context.Context, j *ExportJob) error
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ExportJob tracks one PDF export from request to artifact. Each request
// gets an isolated job with unique artifact paths, so concurrent exports
// from the same session never collide.
type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"-"`
	FileName  string    `json:"fileName"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	HTMLPath  string    `json:"-"`
	PDFPath   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Exporter renders résumé records into letter-sized PDF documents through
// the print template and a headless-browser renderer.
type Exporter struct {
	renderer Renderer
	repo     ExportsRepo
	tplDir   string
	outDir   string
	log      *zap.Logger

	mu   sync.RWMutex
	jobs map[uuid.UUID]*ExportJob
}

func NewExporter(r Renderer, repo ExportsRepo, tplDir, outDir string, log *zap.Logger) *Exporter {
	return &Exporter{
		renderer: r,
		repo:     repo,
		tplDir:   tplDir,
		outDir:   outDir,
		log:      log,
		jobs:     map[uuid.UUID]*ExportJob{},
	}
}

// Start registers a pending job for the record's owner. The caller runs
// Process in the background and polls Get for the outcome.
func (e *Exporter) Start(sessionID string, rec model.ResumeRecord) *ExportJob {
	now := time.Now()
	job := &ExportJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		FileName:  exportFileName(rec.Contact.FullName),
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.mu.Lock()
	e.jobs[job.ID] = job
	e.mu.Unlock()
	return job
}

// Get returns a snapshot of a job.
func (e *Exporter) Get(id uuid.UUID) (ExportJob, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	j, ok := e.jobs[id]
	if !ok {
		return ExportJob{}, false
	}
	return *j, true
}

// Process renders the record and resolves the job to completed or failed.
// Failures are recorded on the job instead of being swallowed; the HTML
// artifact is preserved even when PDF rendering fails.
func (e *Exporter) Process(ctx context.Context, job *ExportJob, rec model.ResumeRecord) error {
	err := e.process(ctx, job, rec)

	e.mu.Lock()
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
	} else {
		job.Status = StatusCompleted
	}
	job.UpdatedAt = time.Now()
	snapshot := *job
	e.mu.Unlock()

	if e.repo != nil {
		if saveErr := e.repo.Save(ctx, &snapshot); saveErr != nil {
			e.log.Warn("failed to save export job", zap.String("id", job.ID.String()), zap.Error(saveErr))
		}
	}
	if err != nil {
		e.log.Error("export failed", zap.String("id", job.ID.String()), zap.Error(err))
	}
	return err
}

func (e *Exporter) process(ctx context.Context, job *ExportJob, rec model.ResumeRecord) error {
	html, err := e.renderHTML(rec)
	if err != nil {
		return err
	}

	jobDir := filepath.Join(e.outDir, job.ID.String())
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return err
	}

	// save the HTML artifact first so it survives a rendering failure
	htmlPath := filepath.Join(jobDir, strings.TrimSuffix(job.FileName, ".pdf")+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}
	e.mu.Lock()
	job.HTMLPath = htmlPath
	e.mu.Unlock()

	pdfBytes, err := e.renderWithRetry(ctx, html)
	if err != nil {
		return err
	}

	pdfPath := filepath.Join(jobDir, job.FileName)
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return err
	}
	e.mu.Lock()
	job.PDFPath = pdfPath
	e.mu.Unlock()
	return nil
}

// renderWithRetry produces the PDF with signature validation and
// exponential backoff between attempts.
func (e *Exporter) renderWithRetry(ctx context.Context, html string) ([]byte, error) {
	var lastErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, err := e.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if len(pdfBytes) > 0 && bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				return pdfBytes, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		lastErr = err
		e.log.Warn("render attempt failed", zap.Int("attempt", i+1), zap.Error(err))
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", attempts, lastErr)
}

func (e *Exporter) renderHTML(rec model.ResumeRecord) (string, error) {
	tpl, err := template.ParseFiles(filepath.Join(e.tplDir, "resume.html"))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, buildView(rec)); err != nil {
		return "", err
	}
	html := buf.String()

	// inline the stylesheet so the artifact is self-contained
	if css, err := os.ReadFile(filepath.Join(e.tplDir, "style.css")); err == nil {
		block := "<style>" + string(css) + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+block, 1)
		} else {
			html = block + html
		}
	}
	return html, nil
}

// exportFileName derives the artifact name from the contact's full name,
// falling back to "resume" when blank.
func exportFileName(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		name = "resume"
	}
	return name + ".pdf"
}
