package models

// Person represents a row in the persons table. HireDate is formatted as
// YYYY-MM-DD in JSON; ManagerID is null for people without a manager.
type Person struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	JobID        int64   `json:"job_id"`
	DepartmentID int64   `json:"department_id"`
	ManagerID    *int64  `json:"manager_id"`
	HireDate     *string `json:"hire_date"`
}

// PersonInfo is the denormalized read projection joining a person with its
// job title, department name and manager's full name. It is built only by
// read queries and never written back.
type PersonInfo struct {
	ID              int64   `json:"id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	JobID           int64   `json:"job_id"`
	JobTitle        string  `json:"job_title"`
	DepartmentID    int64   `json:"department_id"`
	DepartmentName  string  `json:"department_name"`
	ManagerID       *int64  `json:"manager_id"`
	ManagerFullName *string `json:"manager_full_name"`
	HireDate        *string `json:"hire_date"`
}

// CreatePersonRequest is the JSON body for POST /persons.
type CreatePersonRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	JobID        int64   `json:"job_id"`
	DepartmentID int64   `json:"department_id"`
	ManagerID    *int64  `json:"manager_id"`
	HireDate     *string `json:"hire_date"`
}

// UpdatePersonRequest is the JSON body for PUT /persons/{id}. Only present
// fields are applied.
type UpdatePersonRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	JobID        *int64  `json:"job_id"`
	DepartmentID *int64  `json:"department_id"`
	ManagerID    *int64  `json:"manager_id"`
	HireDate     *string `json:"hire_date"`
}
