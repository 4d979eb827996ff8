package film

import "context"

type Repository interface {
	ListFilms(context context.Context, f Filter, limit, offset int) ([]*Film, int, error)
	GetFilm(context context.Context, id int64) (*Film, error)
	GetFilmBySlug(context context.Context, slug string) (*Film, error)
	CreateFilm(context context.Context, film *Film) error
	UpdateFilm(context context.Context, film *Film) error
	DeleteFilm(context context.Context, id int64) error

	// UpdateFilmStatus transitions the lifecycle status and writes the film
	// audit entries in the same transaction. It returns the previous status.
	UpdateFilmStatus(context context.Context, id int64, newStatus, changedBy string) (string, error)

	ListScenes(context context.Context, filmID int64) ([]*Scene, error)
	AddScene(context context.Context, s *Scene) error
	DeleteScene(context context.Context, filmID, sceneID int64) error

	GetCertificate(context context.Context, filmID int64) (*Certificate, error)

	// SetCertificate inserts or replaces the film's certificate.
	SetCertificate(context context.Context, c *Certificate) error
}
