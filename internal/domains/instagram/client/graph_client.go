package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"berserk-tattoos-backend/internal/domains/instagram"
)

const (
	baseURL     = "https://graph.instagram.com"
	mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"
)

// GraphClient talks to the Instagram Graph API. One client is shared across
// handles; credentials are supplied per call because they are resolved per
// request.
type GraphClient struct {
	http *resty.Client
}

func NewGraphClient() *GraphClient {
	return &GraphClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
	}
}

type mediaEnvelope struct {
	Data []instagram.RawMedia `json:"data"`
}

// FetchMedia retrieves up to limit recent posts for the given user. A
// non-2xx response surfaces as instagram.ErrUpstream with the response body
// attached for the operator.
func (c *GraphClient) FetchMedia(ctx context.Context, userID, accessToken string, limit int) ([]instagram.RawMedia, error) {
	var envelope mediaEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       mediaFields,
			"access_token": accessToken,
			"limit":        strconv.Itoa(limit),
		}).
		SetResult(&envelope).
		Get(fmt.Sprintf("/%s/media", userID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d: %s", instagram.ErrUpstream, resp.StatusCode(), resp.String())
	}

	return envelope.Data, nil
}
