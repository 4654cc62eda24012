package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "jsonapi title and detail",
			body: `{"errors":[{"status":"400","title":"Invalid export type","detail":"must be one of result, advancers"}]}`,
			want: "Invalid export type: must be one of result, advancers",
		},
		{
			name: "jsonapi multiple errors",
			body: `{"errors":[{"title":"first"},{"detail":"second"}]}`,
			want: "first; second",
		},
		{
			name: "oauth error with description",
			body: `{"error":"invalid_grant","error_description":"The provided authorization grant is invalid"}`,
			want: "invalid_grant: The provided authorization grant is invalid",
		},
		{
			name: "oauth error without description",
			body: `{"error":"invalid_client"}`,
			want: "invalid_client",
		},
		{
			name: "plain text passthrough",
			body: "backend exploded",
			want: "backend exploded",
		},
		{
			name: "non-error json passthrough",
			body: `{"message":"nope"}`,
			want: `{"message":"nope"}`,
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorDetail([]byte(tt.body)))
		})
	}
}
