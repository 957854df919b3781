package httpserver

import (
	"strconv"
	"strings"

	"moviestore/movie"

	"github.com/labstack/echo/v4"
)

type MovieRequest struct {
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
}

func (r MovieRequest) ToCandidate() movie.Candidate {
	return movie.Candidate{
		Title:    r.Title,
		Director: r.Director,
		Year:     r.Year,
	}
}

// filterFromQuery reads the optional list criteria. Non-numeric year values
// are ignored, not rejected.
func filterFromQuery(c echo.Context) movie.Filter {
	return movie.Filter{
		Title:    strings.TrimSpace(c.QueryParam("title")),
		Director: strings.TrimSpace(c.QueryParam("director")),
		Year:     intQueryParam(c, "year"),
		MinYear:  intQueryParam(c, "minYear"),
		MaxYear:  intQueryParam(c, "maxYear"),
	}
}

func intQueryParam(c echo.Context, name string) *int {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &parsed
}
