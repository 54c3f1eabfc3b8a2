package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateContactRequest_Validate(t *testing.T) {
	valid := CreateContactRequest{
		Name:    "Alex",
		Email:   "alex@example.com",
		Subject: "Walk-ins",
		Message: "Do you take walk-ins on weekends?",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateContactRequest)
	}{
		{"missing name", func(r *CreateContactRequest) { r.Name = "" }},
		{"missing email", func(r *CreateContactRequest) { r.Email = "" }},
		{"malformed email", func(r *CreateContactRequest) { r.Email = "nope" }},
		{"missing subject", func(r *CreateContactRequest) { r.Subject = "" }},
		{"missing message", func(r *CreateContactRequest) { r.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}
