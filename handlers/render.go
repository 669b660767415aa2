package handlers

import (
	"bytes"
	"html/template"
	"sync"
	"time"

	"blog/config"
)

var templateFuncs = template.FuncMap{
	"date": func(ts int64) string {
		return time.Unix(ts, 0).Format("2 Jan 2006 15:04")
	},
}

var (
	pageTemplates *template.Template
	templatesOnce sync.Once
)

// Render executes a page template into bytes. The index page goes
// through here instead of gin's renderer so the page cache can store
// and replay the exact response body.
func Render(name string, data interface{}) ([]byte, error) {
	templatesOnce.Do(func() {
		pageTemplates = template.Must(
			template.New("").Funcs(templateFuncs).ParseGlob(config.TEMPLATES_DIR + "/*.tmpl"))
	})
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
