package entity

import "time"

type Student struct {
	Id        int64
	Name      string
	Grade     string
	CreatedAt time.Time
}
