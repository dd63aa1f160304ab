package dto

import (
	"strings"
)

type CreateActivityTypeRequest struct {
	Name        string  `json:"activity_type_name" validate:"required,min=1,max=100"`
	Description *string `json:"activity_type_description" validate:"omitempty,max=500"`
}

func (r *CreateActivityTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}
