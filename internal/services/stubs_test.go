package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"

	"github.com/google/uuid"

	"go-job-screening/internal/models"
)

// In-memory collaborators shared by the service tests.

type stubMatcher struct {
	scores map[string]float64
}

func (s stubMatcher) Score(jobSummary, resumeText string) float64 {
	return s.scores[jobSummary]
}

type stubLLM struct {
	mu             sync.Mutex
	summarizeCalls int
	summary        string
	letter         string
	err            error
}

func (s *stubLLM) SummarizeJob(ctx context.Context, description string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summarizeCalls++
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func (s *stubLLM) DraftCoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.letter, nil
}

type memJobRepo struct {
	mu             sync.Mutex
	jobs           map[uint]models.JobPosting
	summaryUpdates int
	updateErr      error
}

func newMemJobRepo(jobs ...models.JobPosting) *memJobRepo {
	r := &memJobRepo{jobs: make(map[uint]models.JobPosting)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *memJobRepo) Upsert(job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.jobs[job.ID]; ok && existing.Summary != "" {
		job.Summary = existing.Summary
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *memJobRepo) FindByID(id uint) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job posting not found")
	}
	return &job, nil
}

func (r *memJobRepo) FindAll() ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.JobPosting, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memJobRepo) UpdateSummary(id uint, summary string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("job posting not found")
	}
	job.Summary = summary
	r.jobs[id] = job
	r.summaryUpdates++
	return nil
}

type memMatchRepo struct {
	mu      sync.Mutex
	matches map[string]models.MatchResult
	upserts int
	err     error
}

func newMemMatchRepo() *memMatchRepo {
	return &memMatchRepo{matches: make(map[string]models.MatchResult)}
}

func pairKey(candidateID uuid.UUID, jobID uint) string {
	return fmt.Sprintf("%s|%d", candidateID, jobID)
}

func (r *memMatchRepo) Upsert(match *models.MatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.upserts++
	r.matches[pairKey(match.CandidateID, match.JobID)] = *match
	return nil
}

func (r *memMatchRepo) ListByCandidate(candidateID uuid.UUID) ([]models.MatchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.MatchResult
	for _, m := range r.matches {
		if m.CandidateID == candidateID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobID < out[j].JobID })
	return out, nil
}

type memInterviewRepo struct {
	mu        sync.Mutex
	records   []models.InterviewRecord
	createErr error
}

func (r *memInterviewRepo) Create(record *models.InterviewRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *memInterviewRepo) UpdateStatus(id uuid.UUID, status models.InterviewStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.records {
		if r.records[i].ID == id {
			r.records[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("interview record not found")
}

func (r *memInterviewRepo) ListByCandidate(candidateID uuid.UUID) ([]models.InterviewRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.InterviewRecord
	for _, rec := range r.records {
		if rec.CandidateID == candidateID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memInterviewRepo) FindLatestByPair(candidateID uuid.UUID, jobID uint) (*models.InterviewRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].CandidateID == candidateID && r.records[i].JobID == jobID {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("interview record not found")
}

type memScreeningRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.ScreeningJob
}

func newMemScreeningRepo(jobs ...*models.ScreeningJob) *memScreeningRepo {
	r := &memScreeningRepo{jobs: make(map[uuid.UUID]*models.ScreeningJob)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *memScreeningRepo) Create(job *models.ScreeningJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
	return nil
}

func (r *memScreeningRepo) FindByID(id uuid.UUID) (*models.ScreeningJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, fmt.Errorf("screening job not found")
	}
	copied := *job
	return &copied, nil
}

func (r *memScreeningRepo) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("screening job not found")
	}
	job.Status = status
	return nil
}

func (r *memScreeningRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return fmt.Errorf("screening job not found")
	}
	job.Status = models.StatusFailed
	job.ErrorMessage = &errorMsg
	return nil
}

func (r *memScreeningRepo) FindPendingJobs(limit int) ([]models.ScreeningJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ScreeningJob
	for _, job := range r.jobs {
		if job.Status == models.StatusQueued && len(out) < limit {
			out = append(out, *job)
		}
	}
	return out, nil
}

type memDocRepo struct {
	docs map[uuid.UUID]models.Document
}

func newMemDocRepo(docs ...models.Document) *memDocRepo {
	r := &memDocRepo{docs: make(map[uuid.UUID]models.Document)}
	for _, d := range docs {
		r.docs[d.ID] = d
	}
	return r
}

func (r *memDocRepo) Create(document *models.Document) error {
	r.docs[document.ID] = *document
	return nil
}

func (r *memDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not found")
	}
	return &doc, nil
}

type stubPDFParser struct {
	texts map[string]string
	err   error
}

func (p stubPDFParser) ExtractText(filePath string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.texts[filePath], nil
}

type stubMailer struct {
	mu      sync.Mutex
	sendErr error
	sent    []string
}

func (m *stubMailer) Send(ctx context.Context, recipient, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, recipient)
	return nil
}

type stubStorage struct {
	mu            sync.Mutex
	notifications map[string]string
	writeErr      error
}

func newStubStorage() *stubStorage {
	return &stubStorage{notifications: make(map[string]string)}
}

func (s *stubStorage) SaveFile(file *multipart.FileHeader, fileType string) (string, string, error) {
	return "", "", fmt.Errorf("not supported in tests")
}

func (s *stubStorage) GetFilePath(filename string) string { return filename }

func (s *stubStorage) DeleteFile(filename string) error { return nil }

func (s *stubStorage) EnsureDirs() error { return nil }

func (s *stubStorage) WriteNotification(candidateRef string, jobID uint, content string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return "", s.writeErr
	}
	key := fmt.Sprintf("email_cv%s_jd%d.txt", candidateRef, jobID)
	s.notifications[key] = content
	return key, nil
}
