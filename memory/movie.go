package memory

import (
	"context"
	"sync"

	"moviestore/movie"
)

// seedMovies is the fixed collection every new repository starts with.
var seedMovies = []movie.Movie{
	{ID: 1, Title: "The Shawshank Redemption", Director: "Frank Darabont", Year: 1994},
	{ID: 2, Title: "The Godfather", Director: "Francis Ford Coppola", Year: 1972},
	{ID: 3, Title: "Inception", Director: "Christopher Nolan", Year: 2010},
}

// MovieRepository implements movie.Repository with a transient slice-backed
// collection. Nothing survives a restart.
//
// A single mutex guards both the collection and the id counter: echo serves
// requests concurrently and the unique/monotonic id invariant does not hold
// without serialized mutation.
type MovieRepository struct {
	mu     sync.Mutex
	movies []movie.Movie
	nextID int
}

// NewMovieRepository creates a repository pre-populated with the seed
// records (ids 1-3); the next assigned id is 4.
func NewMovieRepository() *MovieRepository {
	r := &MovieRepository{
		movies: make([]movie.Movie, len(seedMovies)),
		nextID: len(seedMovies) + 1,
	}
	copy(r.movies, seedMovies)
	return r
}

// AllMovies returns the records matching f in insertion order. An empty
// result is a valid result, not an error.
func (r *MovieRepository) AllMovies(_ context.Context, f movie.Filter) ([]movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []movie.Movie{}
	for _, m := range r.movies {
		if f.Matches(m) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (r *MovieRepository) FindMovie(_ context.Context, id int) (movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return movie.Movie{}, movie.ErrNotFound
	}
	return r.movies[i], nil
}

// CreateMovie assigns the next id and appends the record. Ids are never
// reused, even after a delete.
func (r *MovieRepository) CreateMovie(_ context.Context, m movie.Movie) (movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.movies = append(r.movies, m)
	return m, nil
}

// UpdateMovie overwrites the stored record in place; position in the
// collection and id are preserved.
func (r *MovieRepository) UpdateMovie(_ context.Context, m movie.Movie) (movie.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(m.ID)
	if !ok {
		return movie.Movie{}, movie.ErrNotFound
	}
	r.movies[i] = m
	return m, nil
}

func (r *MovieRepository) DeleteMovie(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return movie.ErrNotFound
	}
	r.movies = append(r.movies[:i], r.movies[i+1:]...)
	return nil
}

// indexOf must be called with r.mu held.
func (r *MovieRepository) indexOf(id int) (int, bool) {
	for i, m := range r.movies {
		if m.ID == id {
			return i, true
		}
	}
	return 0, false
}
