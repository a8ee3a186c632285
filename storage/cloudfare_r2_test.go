package storage

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	tests := map[string]struct {
		base string
		key  string
		want string
	}{
		"host only":         {base: "https://cdn.example.com/", key: "schedules/t1.json", want: "https://cdn.example.com/schedules/t1.json"},
		"leading slash key": {base: "https://cdn.example.com/", key: "/schedules/t1.json", want: "https://cdn.example.com/schedules/t1.json"},
		"base with path":    {base: "https://cdn.example.com/league/", key: "schedules/t1.json", want: "https://cdn.example.com/league/schedules/t1.json"},
		"empty key":         {base: "https://cdn.example.com/", key: "", want: ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			base, err := url.Parse(tc.base)
			require.NoError(t, err)
			assert.Equal(t, tc.want, publicURL(base, tc.key))
		})
	}
}

func TestNewCloudflareR2Uploader_NotConfigured(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{BucketName: "b"})
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestNewCloudflareR2Uploader_PublicURL(t *testing.T) {
	u, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "league",
		PublicBaseURL:   "https://cdn.example.com/league",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/league/schedules/t1.json", u.GetPublicURL(ScheduleKey("t1")))
}
