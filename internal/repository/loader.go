package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/user/moviecenter/internal/model"
)

// catalogFile 清单文件的对象形式：{"movies": [...]}
type catalogFile struct {
	Movies []model.Movie `json:"movies" yaml:"movies"`
}

// LoadMovies 从 JSON / YAML 文件读取电影清单，保持文件中的顺序
func LoadMovies(path string) ([]model.Movie, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取电影清单失败: %w", err)
	}

	var movies []model.Movie
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		movies, err = decodeJSON(b)
	case ".yaml", ".yml":
		movies, err = decodeYAML(b)
	default:
		return nil, fmt.Errorf("不支持的清单格式 %q（仅支持 .json/.yaml/.yml）", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("解析电影清单 %s 失败: %w", path, err)
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: 清单 %s 为空", model.ErrInvalidMovieData, path)
	}
	for i, m := range movies {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("清单 %s 第 %d 条: %w", path, i+1, err)
		}
	}
	return movies, nil
}

func decodeJSON(b []byte) ([]model.Movie, error) {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var list []model.Movie
		if err := json.Unmarshal(b, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var f catalogFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f.Movies, nil
}

// decodeYAML 先按通用结构解析，语法错误直接返回，再按顶层是列表还是对象解码
func decodeYAML(b []byte) ([]model.Movie, error) {
	var doc interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc.([]interface{}); ok {
		var list []model.Movie
		if err := yaml.Unmarshal(b, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f.Movies, nil
}
