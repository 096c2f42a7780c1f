// Package testutils provides testing utilities for the memo sheet API.
//
// It contains helpers for:
//  1. Capturing slog output in memory (TestSlogHandler)
//  2. Building multipart generation requests
//  3. Asserting API error responses
//
// Example:
//
//	log, logs := testutils.NewTestLogger()
//	body, contentType := testutils.MultipartForm(t, map[string]string{"subject": "HTA"},
//	    testutils.FormFile{Name: "notes.txt", ContentType: "text/plain", Data: []byte("...")})
//	req := httptest.NewRequest(http.MethodPost, "/api/memofiches", body)
//	req.Header.Set("Content-Type", contentType)
package testutils
