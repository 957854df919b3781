package httpserver

import (
	"net/http"
	"strconv"

	"moviestore/movie"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterMovieRoutes() {
	s.Router.GET("/movies", s.handleListMovies)
	s.Router.POST("/movies", s.handleCreateMovie)
	s.Router.GET("/movies/:id", s.handleGetMovie)
	s.Router.PUT("/movies/:id", s.handleUpdateMovie)
	s.Router.DELETE("/movies/:id", s.handleDeleteMovie)
}

// handleListMovies godoc
// @Summary List Movies
// @Description List movies, optionally filtered; filters combine with AND
// @Tags movies
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param director query string false "Case-insensitive director substring"
// @Param year query int false "Exact release year"
// @Param minYear query int false "Inclusive lower year bound"
// @Param maxYear query int false "Inclusive upper year bound"
// @Success 200 {array} movie.Movie
// @Router /movies [get]
func (s *Server) handleListMovies(c echo.Context) error {
	movies, err := s.MovieService.ListMovies(c.Request().Context(), filterFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, movies)
}

// handleGetMovie godoc
// @Summary Get Movie
// @Description Fetch one movie by id
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} movie.Movie
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (s *Server) handleGetMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	m, err := s.MovieService.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleCreateMovie godoc
// @Summary Create Movie
// @Description Add a new movie; the id is assigned by the store
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie Data"
// @Success 201 {object} movie.Movie
// @Failure 400 {object} map[string][]string
// @Router /movies [post]
func (s *Server) handleCreateMovie(c echo.Context) error {
	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	m, err := s.MovieService.CreateMovie(c.Request().Context(), req.ToCandidate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, m)
}

// handleUpdateMovie godoc
// @Summary Update Movie
// @Description Overwrite title, director and year of an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie Data"
// @Success 200 {object} movie.Movie
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [put]
func (s *Server) handleUpdateMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	var req MovieRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	m, err := s.MovieService.UpdateMovie(c.Request().Context(), id, req.ToCandidate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// handleDeleteMovie godoc
// @Summary Delete Movie
// @Description Remove a movie; its id is never reassigned
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [delete]
func (s *Server) handleDeleteMovie(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// movieID parses the path parameter. A non-numeric id names no record, so
// it reads as not-found rather than a bad request.
func movieID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, movie.ErrNotFound
	}
	return id, nil
}
