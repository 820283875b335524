// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "en", want: "en"},
		{header: "hi-IN,en;q=0.8", want: "hi"},
		{header: " ta ; q=0.9", want: "ta"},
		{header: "*", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.header, func(t *testing.T) {
			var got string
			h := Middleware()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = UserLanguage(r.Context())
			}))
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tc.want, got)
		})
	}
}
