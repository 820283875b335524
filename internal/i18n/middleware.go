// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package i18n

import (
	"context"
	"net/http"
	"strings"
)

type userLanguageContextKey struct{}

// Middleware records the primary language of the Accept-Language header, e.g. "hi" for
// "hi-IN,en;q=0.8", in the request context.
func Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lng := primaryLanguage(r.Header.Get("Accept-Language")); lng != "" {
				r = r.WithContext(WithUserLanguage(r.Context(), lng))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUserLanguage returns a context carrying the user's language.
func WithUserLanguage(ctx context.Context, lng string) context.Context {
	return context.WithValue(ctx, userLanguageContextKey{}, lng)
}

// UserLanguage returns the user's language, or an empty string if unknown.
func UserLanguage(ctx context.Context) string {
	if lng, ok := ctx.Value(userLanguageContextKey{}).(string); ok {
		return lng
	}
	return ""
}

func primaryLanguage(header string) string {
	lng, _, _ := strings.Cut(header, ",")
	lng, _, _ = strings.Cut(lng, ";")
	lng, _, _ = strings.Cut(strings.TrimSpace(lng), "-")
	if lng == "*" {
		return ""
	}
	return strings.ToLower(lng)
}
