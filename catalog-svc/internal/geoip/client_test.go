package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastfoodz/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Locate(t *testing.T) {
	tests := []struct {
		name     string
		ip       string
		status   int
		body     string
		wantPath string
		want     geo.Coordinate
		wantErr  bool
	}{
		{
			name:     "public ip",
			ip:       "8.8.8.8",
			status:   http.StatusOK,
			body:     `{"latitude":22.57,"longitude":88.36,"city":"Kolkata"}`,
			wantPath: "/8.8.8.8/json/",
			want:     geo.Coordinate{Lat: 22.57, Lng: 88.36},
		},
		{
			name:     "private ip asks for caller",
			ip:       "10.0.0.4",
			status:   http.StatusOK,
			body:     `{"latitude":1.5,"longitude":2.5}`,
			wantPath: "/json/",
			want:     geo.Coordinate{Lat: 1.5, Lng: 2.5},
		},
		{
			name:     "rate limited",
			ip:       "8.8.8.8",
			status:   http.StatusTooManyRequests,
			body:     `{}`,
			wantPath: "/8.8.8.8/json/",
			wantErr:  true,
		},
		{
			name:     "reserved range",
			ip:       "",
			status:   http.StatusOK,
			body:     `{"error":true,"reason":"Reserved IP Address"}`,
			wantPath: "/json/",
			wantErr:  true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var gotPath string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer ts.Close()

			client := NewClient(ts.URL, ts.Client())
			got, err := client.Locate(context.Background(), testCase.ip)

			assert.Equal(t, testCase.wantPath, gotPath)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrNoLocation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
