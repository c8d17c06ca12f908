package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"socialnet/internal/common"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages that render inside the base layout
var pageNames = []string{
	"home", "register", "login", "profile", "post_form",
	"confirm_delete", "notifications",
}

var templateFuncs = template.FuncMap{
	"timefmt": func(t time.Time) string {
		return t.Format("Jan 2, 2006 15:04")
	},
	"int": func(n int64) int {
		return int(n)
	},
	"plural": func(n int, singular, plural string) string {
		if n == 1 {
			return singular
		}
		return plural
	},
}

// Renderer holds the parsed page templates. Each page is parsed together
// with the base layout so blocks resolve per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// ViewData is what every template receives. Data carries the page-specific
// payload.
type ViewData struct {
	CurrentUser *common.Claims
	Flash       *Flash
	UnreadCount int64
	Data        interface{}
}

func (r *Renderer) Render(w http.ResponseWriter, page string, data *ViewData) {
	t, ok := r.pages[page]
	if !ok {
		common.Log.WithField("page", page).Error("unknown template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		common.Log.WithField("page", page).WithError(err).Error("template execution failed")
	}
}
