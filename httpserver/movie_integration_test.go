package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviestore/httpserver"
	"moviestore/memory"
	"moviestore/movie"
	"moviestore/pkg/config"
)

// newSeededServer wires the real usecase and in-memory repository, so these
// tests exercise the full request path end to end.
func newSeededServer() *httpserver.Server {
	server := httpserver.Default(config.Empty)
	server.MovieService = movie.NewUsecase(memory.NewMovieRepository())
	return server
}

func doJSON(t *testing.T, server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, newMovieRequest(method, path, body))
	return rec
}

func TestMovieLifecycle(t *testing.T) {
	server := newSeededServer()

	// seeded collection
	rec := doJSON(t, server, "GET", "/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var movies []movie.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	require.Len(t, movies, 3)

	// create gets id 4 and trims fields
	rec = doJSON(t, server, "POST", "/movies", `{"title":"  Heat ","director":"Michael Mann","year":1995}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created movie.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, movie.Movie{ID: 4, Title: "Heat", Director: "Michael Mann", Year: 1995}, created)

	// round-trip
	rec = doJSON(t, server, "GET", "/movies/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched movie.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	// update in place
	rec = doJSON(t, server, "PUT", "/movies/4", `{"title":"Heat","director":"Michael Mann","year":1996}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated movie.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 4, updated.ID)
	assert.Equal(t, 1996, updated.Year)

	// delete, then the id stays gone
	rec = doJSON(t, server, "DELETE", "/movies/4", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doJSON(t, server, "DELETE", "/movies/4", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Movie not found"}`, rec.Body.String())

	// a fresh create never reuses the deleted id
	rec = doJSON(t, server, "POST", "/movies", `{"title":"Alien","director":"Ridley Scott","year":1979}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 5, created.ID)
}

func TestMovieFilters(t *testing.T) {
	server := newSeededServer()

	t.Run("exact year filter returns the single 1994 record", func(t *testing.T) {
		rec := doJSON(t, server, "GET", "/movies?year=1994", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var movies []movie.Movie
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
		require.Len(t, movies, 1)
		assert.Equal(t, movie.Movie{ID: 1, Title: "The Shawshank Redemption", Director: "Frank Darabont", Year: 1994}, movies[0])
	})

	t.Run("combined filters can exclude everything", func(t *testing.T) {
		rec := doJSON(t, server, "GET", "/movies?title=the&minYear=2000", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("non-numeric year filter is ignored", func(t *testing.T) {
		rec := doJSON(t, server, "GET", "/movies?year=abc", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var movies []movie.Movie
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
		assert.Len(t, movies, 3)
	})
}

func TestMovieValidationOverHTTP(t *testing.T) {
	server := newSeededServer()

	rec := doJSON(t, server, "POST", "/movies", `{"title":"","director":"","year":0}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var got struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Title is required", "Director is required", "Year is required"}, got.Errors)

	// nothing was stored
	rec = doJSON(t, server, "GET", "/movies", "")
	var movies []movie.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &movies))
	assert.Len(t, movies, 3)
}
