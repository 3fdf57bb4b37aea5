package webpage

// Page names accepted by Renderer.Render.
const (
	PageMovieList    = "movies/index"
	PageMovieNew     = "movies/new"
	PageMovieDetails = "movies/details"
	PageMovieEdit    = "movies/edit"
	PageError        = "error"
)

var pageSources = map[string]string{
	PageMovieList: `<!DOCTYPE html>
<html>
<head><title>Movies</title></head>
<body>
<h1>Movies</h1>
<table>
<tr><th>Title</th><th>Genre</th><th></th><th></th></tr>
{% for m in movies %}<tr>
<td>{{ m.title }}</td>
<td>{{ m.genre }}</td>
<td><a href="/movies/{{ m.id }}/edit">Edit</a></td>
<td><form method="post" action="/movies/delete/{{ m.id }}"><button type="submit">Delete</button></form></td>
</tr>
{% endfor %}</table>
<p><a href="/movies/new">Add a Movie</a></p>
</body>
</html>
`,

	PageMovieNew: `<!DOCTYPE html>
<html>
<head><title>Add a Movie</title></head>
<body>
<h1>Add a Movie</h1>
{% if error != "" %}<p class="error">{{ error }}</p>{% endif %}
<form method="post" action="/movies">
<p><label for="Title">Title</label> <input type="text" id="Title" name="Title" value="{{ title }}"></p>
<p><label for="Genre">Genre</label> <input type="text" id="Genre" name="Genre" value="{{ genre }}"></p>
<button type="submit">Save</button>
</form>
<p><a href="/movies">Back to List</a></p>
</body>
</html>
`,

	PageMovieDetails: `<!DOCTYPE html>
<html>
<head><title>Movie Details</title></head>
<body>
<h1>Movie Details</h1>
<p>Title: {{ movie.title }}</p>
<p>Genre: {{ movie.genre }}</p>
{% if reviews.size > 0 %}<h2>Reviews</h2>
<ul>
{% for r in reviews %}<li>{{ r.rating }}/5 &mdash; {{ r.content }}</li>
{% endfor %}</ul>
{% endif %}<p><a href="/movies/{{ movie.id }}/edit">Edit</a> | <a href="/movies">Back to List</a></p>
</body>
</html>
`,

	PageMovieEdit: `<!DOCTYPE html>
<html>
<head><title>Edit Movie</title></head>
<body>
<h1>Edit Movie</h1>
{% if error != "" %}<p class="error">{{ error }}</p>{% endif %}
<form method="post" action="/movies/{{ movie.id }}">
<p><label for="Title">Title</label> <input type="text" id="Title" name="Title" value="{{ movie.title }}"></p>
<p><label for="Genre">Genre</label> <input type="text" id="Genre" name="Genre" value="{{ movie.genre }}"></p>
<button type="submit">Save</button>
</form>
<p><a href="/movies">Back to List</a></p>
</body>
</html>
`,

	PageError: `<!DOCTYPE html>
<html>
<head><title>Error</title></head>
<body>
<h1>Something went wrong</h1>
<p>{{ message }}</p>
<p><a href="/movies">Back to List</a></p>
</body>
</html>
`,
}
