package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pipeline_dashboard/internal/models"
	"pipeline_dashboard/internal/service"
)

func TestSetupHandler(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		setErr     error
		wantCode   int
		wantWrites int
	}{
		{
			name:       "full credentials",
			body:       `{"crmAccessToken":"pit","crmLocationId":"loc","voiceApiKey":"xi","voiceAgentId":"ag"}`,
			wantCode:   http.StatusOK,
			wantWrites: 1,
		},
		{
			name:       "voice only is still accepted",
			body:       `{"voiceApiKey":"xi"}`,
			wantCode:   http.StatusOK,
			wantWrites: 1,
		},
		{name: "empty object", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "no body", body: ``, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{"crmAccessToken":`, wantCode: http.StatusBadRequest},
		{
			name:       "store failure",
			body:       `{"crmAccessToken":"pit","crmLocationId":"loc"}`,
			setErr:     errors.New("disk full"),
			wantCode:   http.StatusInternalServerError,
			wantWrites: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockStore{setErr: tc.setErr}
			r := newTestRouter(&service.Service{ConfigStore: store})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/setup", bytes.NewBufferString(tc.body))
			req.Header = jsonHeader()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.wantCode, w.Body.String())
			}
			if len(store.setArgs) != tc.wantWrites {
				t.Fatalf("writes=%d want %d", len(store.setArgs), tc.wantWrites)
			}
		})
	}
}

func TestSetupHandler_PassesDocumentThrough(t *testing.T) {
	store := &mockStore{}
	r := newTestRouter(&service.Service{ConfigStore: store})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/setup",
		bytes.NewBufferString(`{"crmAccessToken":"pit","crmLocationId":"loc"}`))
	req.Header = jsonHeader()
	r.ServeHTTP(w, req)

	want := models.Credentials{CrmAccessToken: "pit", CrmLocationID: "loc"}
	if len(store.setArgs) != 1 || store.setArgs[0] != want {
		t.Fatalf("stored %+v, want %+v", store.setArgs, want)
	}
	var resp struct {
		Success    bool `json:"success"`
		Configured bool `json:"configured"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Success || !resp.Configured {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}
