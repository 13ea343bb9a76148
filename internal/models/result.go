package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type ScreenRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	// CandidateEmail is optional; without it interviews are recorded but no
	// notification is delivered.
	CandidateEmail string `json:"candidate_email"`
}

type ScreenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string         `json:"id"`
	Status       string         `json:"status"`
	Result       *ScreeningData `json:"result,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
}

// ScreeningData is the completed-screening payload: every persisted match in
// ranked order, the top slice of that ranking, and any interviews created.
type ScreeningData struct {
	Matches    []RankedMatch       `json:"matches"`
	TopMatches []RankedMatch       `json:"top_matches"`
	Interviews []InterviewResponse `json:"interviews"`
}

type RankedMatch struct {
	JobID uint    `json:"job_id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

type InterviewResponse struct {
	ID            string  `json:"id"`
	JobID         uint    `json:"job_id"`
	Score         float64 `json:"score"`
	ScheduledDate string  `json:"scheduled_date"`
	ScheduledTime string  `json:"scheduled_time"`
	Status        string  `json:"status"`
}

type ImportJobsResponse struct {
	Imported   int `json:"imported"`
	Summarized int `json:"summarized"`
}

type CoverLetterRequest struct {
	ResumeDocumentID string `json:"resume_document_id" validate:"required,uuid"`
	JobID            uint   `json:"job_id" validate:"required"`
}

type CoverLetterResponse struct {
	JobID       uint   `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
}
