package model

import "devreg/pkg/record"

// Location is a physical site devices are installed at.
type Location struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex"`
}

func (Location) TableName() string {
	return "location"
}

// LocationType describes locations for the generic resource engine.
var LocationType = &record.Type[Location]{
	Name: "location",
	ID:   func(l *Location) int64 { return l.ID },
	Fields: []record.Field[Location]{
		{Name: "id", Value: func(l *Location) any { return l.ID }},
		{Name: "name", Value: func(l *Location) any { return l.Name }},
	},
	Setters: map[string]record.Setter[Location]{
		"name": func(l *Location, v string) error { l.Name = v; return nil },
	},
}
