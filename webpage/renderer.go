// Package webpage renders operation outcomes as HTML pages using Liquid
// templates. It plugs into Echo through the echo.Renderer interface, so
// the request handlers stay independent of the template technology.
package webpage

import (
	"fmt"
	"io"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/osteele/liquid"
)

// Renderer compiles the built-in page templates on first use and caches
// the compiled form.
type Renderer struct {
	engine *liquid.Engine
	cache  sync.Map // map[string]*liquid.Template
}

func NewRenderer() *Renderer {
	return &Renderer{engine: liquid.NewEngine()}
}

// Render implements echo.Renderer. Data must be a bindings map, as
// produced by the *Data helpers in this package.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tpl, err := r.template(name)
	if err != nil {
		return err
	}

	bindings, ok := data.(map[string]interface{})
	if data != nil && !ok {
		return fmt.Errorf("webpage: render %q: data must be map[string]interface{}, got %T", name, data)
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		return fmt.Errorf("webpage: render %q: %w", name, err)
	}

	_, err = io.WriteString(w, out)
	return err
}

func (r *Renderer) template(name string) (*liquid.Template, error) {
	if cached, ok := r.cache.Load(name); ok {
		return cached.(*liquid.Template), nil
	}

	src, ok := pageSources[name]
	if !ok {
		return nil, fmt.Errorf("webpage: unknown page %q", name)
	}

	tpl, err := r.engine.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("webpage: parse %q: %w", name, err)
	}

	r.cache.Store(name, tpl)
	return tpl, nil
}
