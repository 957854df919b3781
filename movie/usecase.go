package movie

import "context"

type Service interface {
	ListMovies(ctx context.Context, f Filter) ([]Movie, error)
	GetMovie(ctx context.Context, id int) (Movie, error)
	CreateMovie(ctx context.Context, c Candidate) (Movie, error)
	UpdateMovie(ctx context.Context, id int, c Candidate) (Movie, error)
	DeleteMovie(ctx context.Context, id int) error
}

type Repository interface {
	AllMovies(ctx context.Context, f Filter) ([]Movie, error)
	FindMovie(ctx context.Context, id int) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateMovie(ctx context.Context, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id int) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context, f Filter) ([]Movie, error) {
	return uc.r.AllMovies(ctx, f)
}

func (uc *Usecase) GetMovie(ctx context.Context, id int) (Movie, error) {
	return uc.r.FindMovie(ctx, id)
}

func (uc *Usecase) CreateMovie(ctx context.Context, c Candidate) (Movie, error) {
	if violations := c.Validate(); len(violations) > 0 {
		return Movie{}, &ValidationError{Violations: violations}
	}
	return uc.r.CreateMovie(ctx, c.ToMovie(0))
}

// UpdateMovie checks existence before validating so an unknown id reports
// not-found even when the candidate is also invalid.
func (uc *Usecase) UpdateMovie(ctx context.Context, id int, c Candidate) (Movie, error) {
	if _, err := uc.r.FindMovie(ctx, id); err != nil {
		return Movie{}, err
	}
	if violations := c.Validate(); len(violations) > 0 {
		return Movie{}, &ValidationError{Violations: violations}
	}
	return uc.r.UpdateMovie(ctx, c.ToMovie(id))
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int) error {
	return uc.r.DeleteMovie(ctx, id)
}
