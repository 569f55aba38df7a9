package model

import (
	"strconv"

	"devreg/pkg/record"
)

// Device is a registered piece of equipment. Its login/password pair is the
// device's own access credential and is stored and served as plain fields;
// only the api-user credential is hashed and redacted.
type Device struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;uniqueIndex"`
	Type     string `gorm:"column:type"`
	Login    string `gorm:"column:login"`
	Password string `gorm:"column:password"`

	LocationID int64    `gorm:"column:location_id"`
	Location   Location `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`

	ApiUserID int64   `gorm:"column:api_user_id"`
	ApiUser   ApiUser `gorm:"foreignKey:ApiUserID;constraint:OnDelete:RESTRICT"`
}

func (Device) TableName() string {
	return "device"
}

// DeviceType describes devices for the generic resource engine. The two
// relations serialize as nested mappings on read and are writable only
// through their location_id / api_user_id foreign keys.
var DeviceType = &record.Type[Device]{
	Name: "device",
	ID:   func(d *Device) int64 { return d.ID },
	Fields: []record.Field[Device]{
		{Name: "id", Value: func(d *Device) any { return d.ID }},
		{Name: "name", Value: func(d *Device) any { return d.Name }},
		{Name: "type", Value: func(d *Device) any { return d.Type }},
		{Name: "login", Value: func(d *Device) any { return d.Login }},
		{Name: "password", Value: func(d *Device) any { return d.Password }},
		{Name: "location", Value: func(d *Device) any { return LocationType.Mapping(&d.Location) }},
		{Name: "api_user", Value: func(d *Device) any { return ApiUserType.Mapping(&d.ApiUser) }},
	},
	Setters: map[string]record.Setter[Device]{
		"name":     func(d *Device, v string) error { d.Name = v; return nil },
		"type":     func(d *Device, v string) error { d.Type = v; return nil },
		"login":    func(d *Device, v string) error { d.Login = v; return nil },
		"password": func(d *Device, v string) error { d.Password = v; return nil },
		"location_id": func(d *Device, v string) error {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			d.LocationID = id
			return nil
		},
		"api_user_id": func(d *Device, v string) error {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return err
			}
			d.ApiUserID = id
			return nil
		},
	},
	Preloads: []string{"Location", "ApiUser"},
}
