package domain

import (
	"encoding/json"
)

// Record statuses as Directus stores them. Only published records are
// ever served to visitors.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusArchived  = "archived"
)

// File is the expanded Directus file metadata attached to image relations.
type File struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Filesize int64  `json:"filesize,omitempty"`
}

// ImageRef absorbs the two shapes Directus uses for a file reference:
// a bare identifier string or a nested object carrying an id field.
// Downstream code only ever sees the normalized identifier.
type ImageRef struct {
	ID   string
	File *File
}

func (r *ImageRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = ImageRef{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = ImageRef{ID: id}
		return nil
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	*r = ImageRef{ID: file.ID, File: &file}
	return nil
}

func (r ImageRef) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// IsZero reports whether the entity carries no image.
func (r ImageRef) IsZero() bool {
	return r.ID == ""
}
