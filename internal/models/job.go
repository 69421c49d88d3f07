package models

// Job represents a row in the jobs table.
type Job struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// CreateJobRequest is the JSON body for POST /jobs.
type CreateJobRequest struct {
	Title string `json:"title"`
}

// UpdateJobRequest is the JSON body for PUT /jobs/{id}.
type UpdateJobRequest struct {
	Title *string `json:"title"`
}
