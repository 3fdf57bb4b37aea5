package webpage

import (
	"cinelog/movie"
	"cinelog/review"
)

// The *Data helpers build the bindings each page expects. Keys are plain
// maps so templates never depend on domain struct layout.

func MovieListData(movies []movie.Movie) map[string]interface{} {
	items := make([]map[string]interface{}, len(movies))
	for i, m := range movies {
		items[i] = movieBinding(m)
	}
	return map[string]interface{}{"movies": items}
}

func NewFormData(errorMsg, title, genre string) map[string]interface{} {
	return map[string]interface{}{
		"error": errorMsg,
		"title": title,
		"genre": genre,
	}
}

func DetailsData(m movie.Movie, reviews []review.Review) map[string]interface{} {
	items := make([]map[string]interface{}, len(reviews))
	for i, r := range reviews {
		items[i] = map[string]interface{}{
			"id":      r.ID,
			"content": r.Content,
			"rating":  r.Rating,
		}
	}
	return map[string]interface{}{
		"movie":   movieBinding(m),
		"reviews": items,
	}
}

func EditFormData(m movie.Movie, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"movie": movieBinding(m),
		"error": errorMsg,
	}
}

func ErrorData(message string) map[string]interface{} {
	return map[string]interface{}{"message": message}
}

func movieBinding(m movie.Movie) map[string]interface{} {
	return map[string]interface{}{
		"id":    m.ID,
		"title": m.Title,
		"genre": m.Genre,
	}
}
