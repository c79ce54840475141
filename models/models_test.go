package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo_EmptyValuesBecomeNA(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "version N/A (2026-01-02, commit N/A)", info.String())
}

func TestContentsPutRequest_OmitsEmptySHA(t *testing.T) {
	b, err := json.Marshal(ContentsPutRequest{Message: "m", Content: "Yg==", Branch: "main"})
	require.NoError(t, err)

	assert.NotContains(t, string(b), `"sha"`)
}

func TestContentsPutRequest_IncludesSHA(t *testing.T) {
	b, err := json.Marshal(ContentsPutRequest{Message: "m", Content: "Yg==", Branch: "main", SHA: "abc"})
	require.NoError(t, err)

	assert.Contains(t, string(b), `"sha":"abc"`)
}

func TestContentsPutResponse_FileURL(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"content html_url", `{"content":{"html_url":"https://github.com/o/r/blob/main/a.md"}}`, "https://github.com/o/r/blob/main/a.md"},
		{"top-level fallback", `{"html_url":"https://github.com/o/r/blob/main/b.md"}`, "https://github.com/o/r/blob/main/b.md"},
		{"nothing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ContentsPutResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.want, resp.FileURL())
		})
	}
}

func TestPublishRequest_JSONFieldNames(t *testing.T) {
	var req PublishRequest
	body := `{"githubUsername":"u","githubToken":"t","githubRepo":"o/r","path":"docs","filename":"a.md","content":"# A"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, PublishRequest{Username: "u", Token: "t", Repo: "o/r", Path: "docs", Filename: "a.md", Content: "# A"}, req)
}
