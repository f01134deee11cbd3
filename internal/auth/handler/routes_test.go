package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every endpoint is mounted.
func TestRegisterRoutes(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	// The verify route hits the token service before anything else.
	f.tokens.EXPECT().Verify(gomock.Any()).Return("", fmt.Errorf("any")).AnyTimes()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/user/register"},
		{http.MethodGet, "/api/v1/user/verify/some-token"},
		{http.MethodPost, "/api/v1/user/reverify"},
		{http.MethodPost, "/api/v1/user/login"},
		{http.MethodPost, "/api/v1/user/logout"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 from the router means
			// it doesn't; handlers returning 400/401 for the empty request is
			// fine for this existence check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
