// Package schemas defines the built-in record schemas.
package schemas

import "roster-manager/core/schema"

// Instructors describes course instructors.
var Instructors = schema.MustNew(schema.Definition{
	BaseName: "instructors",
	Keys:     []string{"first_name", "last_name", "utorid", "email"},
	KeyMap: map[string]string{
		"First Name":  "first_name",
		"Given Name":  "first_name",
		"First":       "first_name",
		"Last Name":   "last_name",
		"Surname":     "last_name",
		"Family Name": "last_name",
		"Last":        "last_name",
	},
	RequiredKeys: []string{"utorid"},
	PrimaryKey:   "utorid",
})

// Applicants describes TA applicants.
var Applicants = schema.MustNew(schema.Definition{
	BaseName: "applicants",
	Keys: []string{
		"first_name", "last_name", "utorid", "student_number", "email",
		"phone", "program", "department", "yip",
	},
	KeyMap: map[string]string{
		"First Name":      "first_name",
		"Given Name":      "first_name",
		"Last Name":       "last_name",
		"Surname":         "last_name",
		"Family Name":     "last_name",
		"Student ID":      "student_number",
		"Student No":      "student_number",
		"Phone Number":    "phone",
		"Year in Program": "yip",
		"Year":            "yip",
	},
	RequiredKeys: []string{"utorid"},
	PrimaryKey:   "utorid",
})

// Positions describes TA positions (courses needing assignments).
var Positions = schema.MustNew(schema.Definition{
	BaseName: "positions",
	Keys: []string{
		"position_code", "position_title", "hours_per_assignment", "start_date", "end_date",
		"contract_template", "desired_num_assignments", "current_enrollment", "duties",
		"qualifications", "instructors",
	},
	KeyMap: map[string]string{
		"Course Code":          "position_code",
		"Course":               "position_code",
		"Position":             "position_code",
		"Course Title":         "position_title",
		"Title":                "position_title",
		"Hours":                "hours_per_assignment",
		"Hours per Assignment": "hours_per_assignment",
		"Start":                "start_date",
		"End":                  "end_date",
		"Template":             "contract_template",
		"Positions":            "desired_num_assignments",
		"Number of Positions":  "desired_num_assignments",
		"Enrollment":           "current_enrollment",
		"Instructor":           "instructors",
	},
	RequiredKeys: []string{"position_code", "contract_template"},
	PrimaryKey:   "position_code",
	DateColumns:  []string{"start_date", "end_date"},
})

// All returns every built-in schema.
func All() []*schema.Schema {
	return []*schema.Schema{Instructors, Applicants, Positions}
}

// NewRegistry returns a registry holding every built-in schema.
func NewRegistry() *schema.Registry {
	reg, err := schema.NewRegistry(All()...)
	if err != nil {
		panic(err)
	}
	return reg
}
