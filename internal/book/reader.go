package book

import "sync"

// Reader is one session's position within a book. Next and Previous are
// no-ops at the ends; Close leaves the index where it was, so reopening
// resumes at the last-viewed page.
type Reader struct {
	book  Book
	index int
	open  bool
}

func NewReader(b Book) *Reader {
	return &Reader{book: b}
}

func (r *Reader) Open() { r.open = true }

// Close does not reset the index; that is intentional reader behavior.
func (r *Reader) Close() { r.open = false }

func (r *Reader) IsOpen() bool { return r.open }

func (r *Reader) Index() int { return r.index }

func (r *Reader) Next() int {
	if r.index < r.book.PageCount()-1 {
		r.index++
	}
	return r.index
}

func (r *Reader) Previous() int {
	if r.index > 0 {
		r.index--
	}
	return r.index
}

// Goto jumps to a page, clamped to the book's bounds.
func (r *Reader) Goto(i int) int {
	r.index = r.book.Clamp(i)
	return r.index
}

// Current returns the page at the reader's position and whether it is the
// synthesized cover.
func (r *Reader) Current() (Page, bool) {
	return r.book.PageAt(r.index)
}

// ReaderStore keeps per-session readers so a reopened book resumes where
// the session left off. A fresh session starts at the cover.
type ReaderStore struct {
	mu      sync.Mutex
	readers map[string]*Reader
}

func NewReaderStore() *ReaderStore {
	return &ReaderStore{readers: map[string]*Reader{}}
}

// With runs fn against the session's reader for a book under the store
// lock, creating the reader at the cover on first access. The key is
// session-and-slug scoped.
func (s *ReaderStore) With(sessionID string, b Book, fn func(*Reader)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionID + "/" + b.Slug
	r, ok := s.readers[key]
	if !ok {
		r = NewReader(b)
		s.readers[key] = r
	}
	fn(r)
}
