package http

import (
	"context"
	"crypto/subtle"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-server/internal/book"
	"portfolio-server/internal/model"
	"portfolio-server/internal/nav"
	"portfolio-server/internal/resume"
	"portfolio-server/internal/usecase"
	"portfolio-server/pkg/response"
)

// Mailer delivers contact form submissions.
type Mailer interface {
	SendContact(name, email, message string) error
}

type Handler struct {
	store      *usecase.ResumeStore
	exporter   *usecase.Exporter
	sessions   *session.Store
	mailer     Mailer
	books      map[string]book.Book
	readers    *book.ReaderStore
	accessCode string
	schemaPath string
	log        *zap.Logger
}

func NewHandler(
	store *usecase.ResumeStore,
	exporter *usecase.Exporter,
	sessions *session.Store,
	mailer Mailer,
	books map[string]book.Book,
	accessCode string,
	templateDir string,
	log *zap.Logger,
) *Handler {
	return &Handler{
		store:      store,
		exporter:   exporter,
		sessions:   sessions,
		mailer:     mailer,
		books:      books,
		readers:    book.NewReaderStore(),
		accessCode: accessCode,
		schemaPath: filepath.Join(templateDir, "resume.schema.json"),
		log:        log,
	}
}

func (h *Handler) session(c *fiber.Ctx) (*session.Session, error) {
	return h.sessions.Get(c)
}

// --- access gate ---

type accessReq struct {
	Code string `json:"code"`
}

// Access grants the session the builder flag when the code matches. This is
// a speed bump, not an auth boundary: the code is shared and session-scoped.
func (h *Handler) Access(c *fiber.Ctx) error {
	var req accessReq
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid payload")
	}

	if h.accessCode != "" &&
		subtle.ConstantTimeCompare([]byte(req.Code), []byte(h.accessCode)) != 1 {
		return response.Unauthorized(c, "incorrect access code")
	}

	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	sess.Set("builder_access", true)
	if err := sess.Save(); err != nil {
		return response.Internal(c, "")
	}
	return response.Message(c, "access granted")
}

// RequireAccess guards the builder routes. With no code configured the gate
// is open.
func (h *Handler) RequireAccess(c *fiber.Ctx) error {
	if h.accessCode == "" {
		return c.Next()
	}
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	if granted, ok := sess.Get("builder_access").(bool); !ok || !granted {
		return response.Unauthorized(c, "access code required")
	}
	return c.Next()
}

// --- résumé ---

// GetResume returns the session's record, seeding it on first access.
func (h *Handler) GetResume(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	rec := h.store.Get(sess.ID())
	if err := sess.Save(); err != nil {
		return response.Internal(c, "")
	}
	return response.OK(c, rec)
}

// ReplaceResume installs a whole replacement record after schema validation.
func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	var rec model.ResumeRecord
	if err := c.BodyParser(&rec); err != nil {
		return response.BadRequest(c, "invalid payload")
	}
	if err := model.ValidateRecord(h.schemaPath, rec); err != nil {
		return response.BadRequest(c, err.Error())
	}
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	h.store.Replace(sess.ID(), rec)
	return response.OK(c, rec)
}

type editReq struct {
	Path      string `json:"path"`
	Draft     string `json:"draft"`
	Multiline bool   `json:"multiline"`
	Event     string `json:"event"` // enter | escape | blur
}

type editResp struct {
	Committed bool               `json:"committed"`
	Value     string             `json:"value"`
	Record    model.ResumeRecord `json:"record"`
}

// Edit resolves a single inline edit through the field editor state machine
// and, when the edit commits, replaces the session's record.
func (h *Handler) Edit(c *fiber.Ctx) error {
	var req editReq
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid payload")
	}

	var event resume.InputEvent
	switch req.Event {
	case "enter":
		event = resume.EventEnter
	case "escape":
		event = resume.EventEscape
	case "blur":
		event = resume.EventBlur
	default:
		return response.BadRequest(c, "unknown event")
	}

	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	rec := h.store.Get(sess.ID())

	current, err := resume.ReadField(rec, req.Path)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	ed := resume.NewFieldEditor(current, req.Multiline)
	ed.Begin()
	ed.SetDraft(req.Draft)
	committed, value := ed.Handle(event)

	if committed {
		updated, err := resume.Apply(rec, resume.Edit{Path: req.Path, Value: value})
		if err != nil {
			return response.BadRequest(c, err.Error())
		}
		h.store.Replace(sess.ID(), updated)
		rec = updated
	}
	return response.OK(c, editResp{Committed: committed, Value: value, Record: rec})
}

type entryReq struct {
	List string `json:"list"`
}

// AddEntry appends a blank entry to one of the record's lists.
func (h *Handler) AddEntry(c *fiber.Ctx) error {
	var req entryReq
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid payload")
	}
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	rec := h.store.Get(sess.ID())

	var id string
	switch req.List {
	case "experience":
		rec, id = resume.AddExperience(rec)
	case "education":
		rec, id = resume.AddEducation(rec)
	case "projects":
		rec, id = resume.AddProject(rec)
	case "certifications":
		rec, id = resume.AddCertification(rec)
	default:
		return response.BadRequest(c, "unknown entry list")
	}
	h.store.Replace(sess.ID(), rec)
	return response.OK(c, fiber.Map{"id": id, "record": rec})
}

// RemoveEntry deletes an entry by id.
func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	rec := h.store.Get(sess.ID())
	rec, err = resume.RemoveEntry(rec, c.Params("list"), c.Params("id"))
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	h.store.Replace(sess.ID(), rec)
	return response.OK(c, rec)
}

// --- export ---

// StartExport creates an export job for the session's record and processes
// it in the background. The response carries the job id for polling.
func (h *Handler) StartExport(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	rec := h.store.Get(sess.ID())
	job := h.exporter.Start(sess.ID(), rec)
	id, status, fileName := job.ID.String(), job.Status, job.FileName

	go func() {
		if err := h.exporter.Process(context.Background(), job, rec); err != nil {
			h.log.Warn("export job failed", zap.String("id", id), zap.Error(err))
		}
	}()

	return response.Accepted(c, fiber.Map{"id": id, "status": status, "fileName": fileName})
}

// GetExport reports a job's status, including any failure.
func (h *Handler) GetExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "invalid export id")
	}
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	job, ok := h.exporter.Get(id)
	if !ok || job.SessionID != sess.ID() {
		return response.NotFound(c, "export not found")
	}
	return response.OK(c, job)
}

// DownloadExport serves a completed job's PDF artifact.
func (h *Handler) DownloadExport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "invalid export id")
	}
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	job, ok := h.exporter.Get(id)
	if !ok || job.SessionID != sess.ID() {
		return response.NotFound(c, "export not found")
	}
	if job.Status != usecase.StatusCompleted || job.PDFPath == "" {
		return response.NotFound(c, "export not ready")
	}
	return c.Download(job.PDFPath, job.FileName)
}

// --- storybook reader ---

type readerState struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Index      int      `json:"index"`
	PageCount  int      `json:"pageCount"`
	Open       bool     `json:"open"`
	IsCover    bool     `json:"isCover"`
	Page       book.Page `json:"page"`
	Paragraphs []string `json:"paragraphs"`
}

func (h *Handler) bookBySlug(c *fiber.Ctx) (book.Book, bool) {
	b, ok := h.books[c.Params("slug")]
	return b, ok
}

func (h *Handler) readerResponse(c *fiber.Ctx, b book.Book, op func(*book.Reader)) error {
	sess, err := h.session(c)
	if err != nil {
		return response.Internal(c, "")
	}
	var state readerState
	h.readers.With(sess.ID(), b, func(r *book.Reader) {
		if op != nil {
			op(r)
		}
		page, isCover := r.Current()
		state = readerState{
			Slug:       b.Slug,
			Title:      b.Title,
			Author:     b.Author,
			Index:      r.Index(),
			PageCount:  b.PageCount(),
			Open:       r.IsOpen(),
			IsCover:    isCover,
			Page:       page,
			Paragraphs: book.Paragraphs(page.Content),
		}
	})
	if err := sess.Save(); err != nil {
		return response.Internal(c, "")
	}
	return response.OK(c, state)
}

func (h *Handler) GetBook(c *fiber.Ctx) error {
	b, ok := h.bookBySlug(c)
	if !ok {
		return response.NotFound(c, "unknown book")
	}
	return h.readerResponse(c, b, nil)
}

func (h *Handler) OpenBook(c *fiber.Ctx) error {
	b, ok := h.bookBySlug(c)
	if !ok {
		return response.NotFound(c, "unknown book")
	}
	return h.readerResponse(c, b, func(r *book.Reader) { r.Open() })
}

// CloseBook closes the reader without resetting its page: reopening resumes
// at the last-viewed page.
func (h *Handler) CloseBook(c *fiber.Ctx) error {
	b, ok := h.bookBySlug(c)
	if !ok {
		return response.NotFound(c, "unknown book")
	}
	return h.readerResponse(c, b, func(r *book.Reader) { r.Close() })
}

func (h *Handler) NextPage(c *fiber.Ctx) error {
	b, ok := h.bookBySlug(c)
	if !ok {
		return response.NotFound(c, "unknown book")
	}
	return h.readerResponse(c, b, func(r *book.Reader) { r.Next() })
}

func (h *Handler) PreviousPage(c *fiber.Ctx) error {
	b, ok := h.bookBySlug(c)
	if !ok {
		return response.NotFound(c, "unknown book")
	}
	return h.readerResponse(c, b, func(r *book.Reader) { r.Previous() })
}

// --- navigation ---

type navConfig struct {
	Sections     []nav.Section `json:"sections"`
	LeadIn       int           `json:"leadIn"`
	HeaderOffset int           `json:"headerOffset"`
	HideAfter    int           `json:"hideAfter"`
}

// NavSections exposes the section registry and scroll constants the shell
// script uses for scroll-spy and smooth scrolling.
func (h *Handler) NavSections(c *fiber.Ctx) error {
	return response.OK(c, navConfig{
		Sections:     nav.Sections(),
		LeadIn:       nav.LeadIn,
		HeaderOffset: nav.HeaderOffset,
		HideAfter:    nav.HideThreshold,
	})
}

// --- contact ---

type contactReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact forwards a contact form submission by email. Failure surfaces as
// an inline error the form can display; the user retries.
func (h *Handler) Contact(c *fiber.Ctx) error {
	var req contactReq
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid payload")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return response.BadRequest(c, "name and message are required")
	}
	if err := h.mailer.SendContact(req.Name, req.Email, req.Message); err != nil {
		h.log.Warn("contact email failed", zap.Error(err))
		return response.Internal(c, "sorry, there was an error sending your message; please try again later")
	}
	return response.Message(c, "thank you for your message")
}
