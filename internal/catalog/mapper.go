package catalog

import "marquee/internal/domain"

func mapMovie(dto movieDTO) domain.Movie {
	return domain.Movie{
		ID:    string(dto.ID),
		Title: dto.Title,
		Year:  int(dto.Year),
		Genre: dto.Genre,
	}
}

func mapMovies(dtos []movieDTO) []domain.Movie {
	movies := make([]domain.Movie, len(dtos))
	for i, dto := range dtos {
		movies[i] = mapMovie(dto)
	}
	return movies
}
