package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ErrInvalidMovieData 电影记录字段缺失或格式不正确
var ErrInvalidMovieData = errors.New("invalid movie data")

// Movie 电影记录（标题、简介、海报、预告片）
type Movie struct {
	Title             string `json:"title" yaml:"title" validate:"required,notblank"`
	Storyline         string `json:"storyline" yaml:"storyline" validate:"required,notblank"`
	PosterImageURL    string `json:"poster_image_url" yaml:"poster_image_url" validate:"required,http_url"`
	TrailerYouTubeURL string `json:"trailer_youtube_url" yaml:"trailer_youtube_url" validate:"required,http_url"`
}

// NewMovie 创建电影记录，四个字段原样保存
func NewMovie(title, storyline, posterImageURL, trailerYouTubeURL string) (Movie, error) {
	m := Movie{
		Title:             title,
		Storyline:         storyline,
		PosterImageURL:    posterImageURL,
		TrailerYouTubeURL: trailerYouTubeURL,
	}
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return m, nil
}

// Validate 校验字段完整性
func (m Movie) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidMovieData, err)
	}
	out := &InvalidMovieDataError{Title: m.Title}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// FieldError 单个字段的校验失败
type FieldError struct {
	Field string // json 字段名
	Rule  string // 未通过的规则，例如 required / http_url
}

// InvalidMovieDataError 构造电影记录失败
type InvalidMovieDataError struct {
	Title  string
	Fields []FieldError
}

func (e *InvalidMovieDataError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+"("+f.Rule+")")
	}
	if e.Title == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidMovieData, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("%v: %q: %s", ErrInvalidMovieData, e.Title, strings.Join(parts, ", "))
}

func (e *InvalidMovieDataError) Unwrap() error { return ErrInvalidMovieData }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	// 错误信息中使用 json 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}
