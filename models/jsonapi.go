package models

import (
	"encoding/json"
	"fmt"
)

// JSONAPIContentType is the media type the Swimtopia API expects on every
// request and returns on every response, except the OAuth token endpoint
// (form-encoded) and the signed export download (binary).
const JSONAPIContentType = "application/vnd.api+json"

// Resource is a single JSON:API resource object. Attributes are kept raw so
// each endpoint can decode them into its own typed attribute struct.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    json.RawMessage         `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// DecodeAttributes unmarshals the raw attributes object into v.
func (r Resource) DecodeAttributes(v any) error {
	if len(r.Attributes) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Attributes, v); err != nil {
		return fmt.Errorf("decode %s attributes: %w", r.Type, err)
	}
	return nil
}

// ResourceIdentifier is a {type, id} reference inside a relationship.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship holds the raw "data" member of a relationship, which may be a
// single resource identifier, a list of identifiers, or null.
type Relationship struct {
	Data json.RawMessage `json:"data,omitempty"`
}

// One decodes the relationship as a to-one reference. Returns nil for a null
// or absent relationship.
func (r Relationship) One() *ResourceIdentifier {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	var id ResourceIdentifier
	if err := json.Unmarshal(r.Data, &id); err != nil {
		return nil
	}
	return &id
}

// Many decodes the relationship as a to-many reference list.
func (r Relationship) Many() []ResourceIdentifier {
	if len(r.Data) == 0 {
		return nil
	}
	var ids []ResourceIdentifier
	if err := json.Unmarshal(r.Data, &ids); err != nil {
		return nil
	}
	return ids
}

// SingleDocument is a JSON:API response whose primary data is one resource,
// optionally accompanied by compound "included" resources.
type SingleDocument struct {
	Data     Resource   `json:"data"`
	Included []Resource `json:"included,omitempty"`
}

// CollectionDocument is a JSON:API response whose primary data is a resource
// list.
type CollectionDocument struct {
	Data     []Resource `json:"data"`
	Included []Resource `json:"included,omitempty"`
}

// ErrorObject is a member of a JSON:API "errors" array.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// ErrorDocument is a JSON:API error response body.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}
