package instagram

// Media is the normalized shape the API returns for one Instagram post.
// For videos MediaURL prefers the thumbnail over the raw media URL so the
// gallery can render a still image.
type Media struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	MediaType string `json:"mediaType"`
	MediaURL  string `json:"mediaUrl"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

// RawMedia is one record as returned by the Graph API, before
// normalization.
type RawMedia struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

// ResolveURL picks the displayable URL for a raw record: thumbnail first
// for videos, media URL first otherwise, falling back to whichever is
// present. Empty means the record has nothing usable.
func (m RawMedia) ResolveURL() string {
	if m.MediaType == "VIDEO" {
		if m.ThumbnailURL != "" {
			return m.ThumbnailURL
		}
		return m.MediaURL
	}
	if m.MediaURL != "" {
		return m.MediaURL
	}
	return m.ThumbnailURL
}

// Normalize converts a raw Graph API record to the public shape.
func (m RawMedia) Normalize() Media {
	return Media{
		ID:        m.ID,
		Caption:   m.Caption,
		MediaType: m.MediaType,
		MediaURL:  m.ResolveURL(),
		Permalink: m.Permalink,
		Timestamp: m.Timestamp,
	}
}
