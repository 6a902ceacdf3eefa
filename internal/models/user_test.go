package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "supersecret"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"empty username", RegisterRequest{Username: "  ", Email: "a@b.com", Password: "supersecret"}},
		{"short username", RegisterRequest{Username: "ab", Email: "a@b.com", Password: "supersecret"}},
		{"bad email", RegisterRequest{Username: "alice", Email: "not-an-email", Password: "supersecret"}},
		{"short password", RegisterRequest{Username: "alice", Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestToggleSolvedRequestValidate(t *testing.T) {
	ok := ToggleSolvedRequest{ProblemID: "42", Solved: true}
	assert.NoError(t, ok.Validate())

	empty := ToggleSolvedRequest{ProblemID: "   "}
	assert.Error(t, empty.Validate())
}
