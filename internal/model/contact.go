package model

import "time"

// Contact is a visitor-submitted message. Created on contact-form POST,
// never updated or deleted; retention is unbounded.
type Contact struct {
	Sno      uint      `gorm:"primaryKey;autoIncrement"`
	Name     string    `gorm:"size:80;not null"`
	Email    string    `gorm:"size:120;not null"`
	PhoneNum string    `gorm:"size:12;not null"`
	Msg      string    `gorm:"size:120;not null;column:meg"`
	Date     time.Time `gorm:"autoCreateTime"`
}

func (Contact) TableName() string { return "contacts" }
