package model

import (
	"errors"
	"net/url"

	"devreg/pkg/password"
	"devreg/pkg/record"
)

// ApiUser is an owner of registered devices. Its password field holds the
// salted credential produced by the password package, never a raw password.
type ApiUser struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	Email    string `gorm:"column:email;uniqueIndex"`
	Password string `gorm:"column:password"`
}

func (ApiUser) TableName() string {
	return "api_user"
}

// CheckPassword reports whether a raw password matches the stored credential.
func (u *ApiUser) CheckPassword(raw string) bool {
	return password.Verify(raw, u.Password)
}

// ApiUserType describes api users for the generic resource engine. The
// password field is sensitive and never serialized. On create, the raw
// password input is replaced with a freshly salted hash before the record is
// constructed; updates assign supplied fields verbatim.
var ApiUserType = &record.Type[ApiUser]{
	Name: "apiuser",
	ID:   func(u *ApiUser) int64 { return u.ID },
	Fields: []record.Field[ApiUser]{
		{Name: "id", Value: func(u *ApiUser) any { return u.ID }},
		{Name: "name", Value: func(u *ApiUser) any { return u.Name }},
		{Name: "email", Value: func(u *ApiUser) any { return u.Email }},
		{Name: "password", Value: func(u *ApiUser) any { return u.Password }, Sensitive: true},
	},
	Setters: map[string]record.Setter[ApiUser]{
		"name":     func(u *ApiUser, v string) error { u.Name = v; return nil },
		"email":    func(u *ApiUser, v string) error { u.Email = v; return nil },
		"password": func(u *ApiUser, v string) error { u.Password = v; return nil },
	},
	OnCreate: func(values url.Values) error {
		if !values.Has("password") {
			return errors.New("apiuser: password is required")
		}
		salt, err := password.GenerateSalt()
		if err != nil {
			return err
		}
		values.Set("password", password.Hash(values.Get("password"), salt))
		return nil
	},
}
