// Package validate applies declarative per-entity field rules to decoded
// JSON objects before they are mapped to typed structs. Validation here is
// purely structural; foreign-key existence is the store's job.
package validate

import (
	"github.com/ayush/org-chart-api/internal/apperror"
)

// Rules describes the accepted shape of one entity's input. Required order
// matters: the first missing field in declaration order names the error.
type Rules struct {
	Required  []string
	Optional  []string
	Forbidden []string
}

var rules = map[string]Rules{
	"user": {
		Required:  []string{"username", "password"},
		Forbidden: []string{"id"},
	},
	"department": {
		Required:  []string{"name"},
		Forbidden: []string{"id"},
	},
	"job": {
		Required:  []string{"title"},
		Forbidden: []string{"id"},
	},
	"person": {
		Required:  []string{"first_name", "last_name", "job_id", "department_id"},
		Optional:  []string{"manager_id", "hire_date"},
		Forbidden: []string{"id"},
	},
}

// Create checks input against the entity's create rules: every required
// field present, no forbidden or unknown keys.
func Create(kind string, input map[string]any) error {
	r, ok := rules[kind]
	if !ok {
		return apperror.Newf(apperror.CodeInternal, "unknown entity kind %q", kind)
	}

	for _, f := range r.Required {
		if _, present := input[f]; !present {
			return apperror.Newf(apperror.CodeValidation, "missing field: %s", f)
		}
	}
	return checkUnexpected(r, input, r.Required)
}

// Update checks input against the entity's update rules: all fields
// optional, forbidden keys still rejected. An empty input is a valid no-op.
func Update(kind string, input map[string]any) error {
	r, ok := rules[kind]
	if !ok {
		return apperror.Newf(apperror.CodeInternal, "unknown entity kind %q", kind)
	}
	return checkUnexpected(r, input, nil)
}

func checkUnexpected(r Rules, input map[string]any, required []string) error {
	allowed := make(map[string]bool, len(r.Required)+len(r.Optional))
	for _, f := range r.Required {
		allowed[f] = true
	}
	for _, f := range r.Optional {
		allowed[f] = true
	}

	for _, f := range r.Forbidden {
		if _, present := input[f]; present {
			return apperror.Newf(apperror.CodeValidation, "unexpected field: %s", f)
		}
	}
	for k := range input {
		if !allowed[k] {
			return apperror.Newf(apperror.CodeValidation, "unexpected field: %s", k)
		}
	}
	return nil
}
