package models

import (
	"encoding/json"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBadReference = errors.New("reference must be an id string or an object")

// BrandInput is the inline form of a brand reference.
type BrandInput struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
	Logo string `json:"logo,omitempty" validate:"omitempty,url"`
}

// BrandRef accepts either an existing brand id or an inline brand payload.
// Exactly one of ID and Inline is set after a successful unmarshal.
type BrandRef struct {
	ID     *primitive.ObjectID
	Inline *BrandInput
}

func (r *BrandRef) IsZero() bool {
	return r == nil || (r.ID == nil && r.Inline == nil)
}

func (r *BrandRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return err
		}
		r.ID = &id
		return nil
	}

	var in BrandInput
	if err := json.Unmarshal(data, &in); err != nil {
		return errBadReference
	}
	r.Inline = &in
	return nil
}

func (r BrandRef) MarshalJSON() ([]byte, error) {
	if r.ID != nil {
		return json.Marshal(r.ID.Hex())
	}
	return json.Marshal(r.Inline)
}

// VariantInput is the inline form of a variant reference.
type VariantInput struct {
	Name  string                 `json:"name" validate:"required,min=1,max=200"`
	Specs map[string]interface{} `json:"specs,omitempty"`
}

// VariantRef accepts either an existing variant id or an inline variant
// payload, mirroring BrandRef.
type VariantRef struct {
	ID     *primitive.ObjectID
	Inline *VariantInput
}

func (r *VariantRef) IsZero() bool {
	return r == nil || (r.ID == nil && r.Inline == nil)
}

func (r *VariantRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return err
		}
		r.ID = &id
		return nil
	}

	var in VariantInput
	if err := json.Unmarshal(data, &in); err != nil {
		return errBadReference
	}
	r.Inline = &in
	return nil
}

func (r VariantRef) MarshalJSON() ([]byte, error) {
	if r.ID != nil {
		return json.Marshal(r.ID.Hex())
	}
	return json.Marshal(r.Inline)
}
