package instagram

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IngestRequest is the admin payload for pulling a handle's posts into the
// gallery. ArtistID is optional; when absent the handle must appear in the
// handle-to-artist mapping.
type IngestRequest struct {
	Handle   string `json:"handle"`
	Limit    int    `json:"limit"`
	ArtistID string `json:"artistId"`
}

func (r IngestRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Handle,
			validation.Required.Error("handle is required"),
		),
		validation.Field(&r.Limit,
			validation.Min(0),
		),
	)
}
