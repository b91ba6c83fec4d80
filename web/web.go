package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates
var files embed.FS

// Templates 内嵌的模板目录（layouts / partials / pages）
func Templates() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// ParsePage 组装布局、局部模板和指定页面，执行结果从 base.html 开始
func ParsePage(fsys fs.FS, page string, funcs template.FuncMap) (*template.Template, error) {
	return template.New("base.html").Funcs(funcs).ParseFS(fsys,
		"layouts/*.html",
		"partials/*.html",
		"pages/"+page+".html",
	)
}
