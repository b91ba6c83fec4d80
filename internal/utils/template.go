package utils

import "html/template"

// TemplateFuncs 页面模板函数
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"default": func(defaultValue, value interface{}) interface{} {
			switch v := value.(type) {
			case string:
				if v == "" {
					return defaultValue
				}
			case int:
				if v == 0 {
					return defaultValue
				}
			case nil:
				return defaultValue
			}
			return value
		},
		"embedURL": YouTubeEmbedURL,
	}
}
