package model

import "time"

// Post is a blog entry; Slug is the public lookup key.
type Post struct {
	Sno     uint      `gorm:"primaryKey;autoIncrement"`
	Title   string    `gorm:"size:80;not null"`
	Slug    string    `gorm:"size:25;uniqueIndex:idx_post_slug;not null"`
	Content string    `gorm:"type:text;not null"`
	Tagline string    `gorm:"size:120;not null"`
	Date    time.Time `gorm:"autoCreateTime"`
}

func (Post) TableName() string { return "posts" }
