package request_models

import (
	"mime/multipart"
	"reflect"
	"strings"
)

// RegisterRequest binds from either a multipart form (with an optional
// profile_photo part) or a JSON body.
type RegisterRequest struct {
	Name         string                `form:"name" json:"name" binding:"required,max=100"`
	Email        string                `form:"email" json:"email" binding:"required,email,max=120"`
	Password     string                `form:"password" json:"password" binding:"required,min=6"`
	Location     *string               `form:"location" json:"location" binding:"omitempty,max=200"`
	IsPublic     *bool                 `form:"is_public" json:"is_public"`
	ProfilePhoto *multipart.FileHeader `form:"profile_photo" json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FormFieldNames returns the form tag names a request struct binds.
func FormFieldNames(v interface{}) map[string]bool {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if name != "" && name != "-" {
			names[name] = true
		}
	}
	return names
}
