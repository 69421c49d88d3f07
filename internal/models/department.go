package models

// Department represents a row in the departments table.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateDepartmentRequest is the JSON body for POST /departments.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

// UpdateDepartmentRequest is the JSON body for PUT /departments/{id}.
type UpdateDepartmentRequest struct {
	Name *string `json:"name"`
}
