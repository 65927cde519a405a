package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/sprig"

	"github.com/smartchessacademy/website/src/auth"
	"github.com/smartchessacademy/website/src/logging"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/utils"
)

//go:embed src
var embeddedTemplateFs embed.FS
var embeddedTemplates map[string]*template.Template

func getTemplatesFromFS(templateFS fs.ReadDirFS) (map[string]*template.Template, map[string]error) {
	templates := make(map[string]*template.Template)
	errs := make(map[string]error)

	files := utils.Must1(templateFS.ReadDir("src"))
	for _, f := range files {
		if !strings.HasSuffix(f.Name(), ".html") {
			continue
		}
		t := template.New(f.Name())
		t = t.Funcs(sprig.FuncMap())
		t = t.Funcs(SCATemplateFuncs)
		t, err := t.ParseFS(templateFS,
			"src/layouts/*",
			"src/include/*",
			"src/"+f.Name(),
		)
		if err != nil {
			errs[f.Name()] = err
			continue
		}

		templates[f.Name()] = t
	}

	return templates, errs
}

func Init() {
	var errs map[string]error
	embeddedTemplates, errs = getTemplatesFromFS(embeddedTemplateFs)
	if len(errs) > 0 {
		names := make([]string, 0, len(errs))
		for filename := range errs {
			names = append(names, filename)
		}
		sort.Strings(names)
		for _, filename := range names {
			logging.Error().Str("filename", filename).Err(errs[filename]).Msg("Failed to parse template")
		}
		panic("Failed to parse templates; see above")
	}
}

func GetTemplate(name string) *template.Template {
	template, hasTemplate := embeddedTemplates[name]
	if !hasTemplate {
		panic(oops.New(nil, "Template not found: %s", name))
	}
	return template
}

var SCATemplateFuncs = template.FuncMap{
	"add": func(a int, b ...int) int {
		for _, num := range b {
			a += num
		}
		return a
	},
	"absolutedate": func(t time.Time) string {
		return t.UTC().Format("January 2, 2006, 3:04pm")
	},
	"absoluteshortdate": func(t time.Time) string {
		return t.UTC().Format("January 2, 2006")
	},
	"eventdate": func(t time.Time) string {
		return t.Format("Monday, January 2, 2006")
	},
	"rfc3339": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
	"csrftoken": func(s *Session) template.HTML {
		return template.HTML(fmt.Sprintf(`<input type="hidden" name="%s" value="%s">`, auth.CSRFFieldName, s.CSRFToken))
	},
}
