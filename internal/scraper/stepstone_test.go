package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfinder/internal/httpclient"
)

const stepstoneFixture = `<!DOCTYPE html>
<html><body>
<article class="listing">
  <a class="listing-link" href="/stellenangebote--junior-data-engineer-berlin--123.html"></a>
  <h2 class="listing-job-headline">Junior Data Engineer (m/w/d)</h2>
  <p class="listing-company-name">Acme GmbH</p>
  <span class="listing-publish-date">vor 3 Stunden</span>
</article>
<article class="listing">
  <a class="listing-link" href="https://www.example.com/jobs/456"></a>
  <h2 class="listing-job-headline">Werkstudent Software Engineering</h2>
  <p class="listing-company-name">Beta AG</p>
</article>
<article class="listing">
  <h2 class="listing-job-headline"></h2>
  <p class="listing-company-name">No Title Corp</p>
</article>
</body></html>`

func testClient(t *testing.T) *httpclient.Client {
	t.Helper()
	client, err := httpclient.New(httpclient.Options{
		MinDelay: time.Millisecond,
		MaxDelay: 2 * time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestStepstoneSearchParsesListings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "junior data engineer", req.URL.Query().Get("fulltext"))
		assert.Equal(t, "jobPostDate-desc", req.URL.Query().Get("sort"))
		w.Write([]byte(stepstoneFixture))
	}))
	defer srv.Close()

	st := &Stepstone{
		client:  testClient(t),
		baseURL: srv.URL,
		queries: []string{"junior data engineer"},
	}

	postings, err := st.Search(context.Background())
	require.NoError(t, err)
	require.Len(t, postings, 2, "listings without a title are skipped")

	first := postings[0]
	assert.Equal(t, "Junior Data Engineer (m/w/d)", first.Title)
	assert.Equal(t, "Acme GmbH", first.Company)
	assert.Equal(t, srv.URL+"/stellenangebote--junior-data-engineer-berlin--123.html", first.URL)
	assert.Equal(t, "Stepstone", first.Board)
	assert.Equal(t, "Germany", first.Location)
	require.NotNil(t, first.PostedAt)
	assert.WithinDuration(t, time.Now().Add(-3*time.Hour), *first.PostedAt, time.Minute)

	second := postings[1]
	assert.Equal(t, "https://www.example.com/jobs/456", second.URL, "absolute links pass through unchanged")
	assert.Nil(t, second.PostedAt)
}

func TestStepstoneSearchSurfacesErrorWhenNothingFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	st := &Stepstone{
		client:  testClient(t),
		baseURL: srv.URL,
		queries: []string{"junior"},
	}

	_, err := st.Search(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 403")
}
