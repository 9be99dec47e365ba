package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a citizen's profile. Alias is shown instead of Name when UseAlias is set.
type User struct {
	ID          string    `bson:"_id" json:"id" yaml:"id"`
	Name        string    `bson:"name" json:"name" yaml:"name"`
	Email       string    `bson:"email" json:"email" yaml:"email"`
	Password    string    `bson:"password,omitempty" json:"-" yaml:"-"`
	Avatar      string    `bson:"avatar" json:"avatar" yaml:"avatar"`
	UseAlias    bool      `bson:"useAlias" json:"useAlias" yaml:"useAlias"`
	Alias       string    `bson:"alias" json:"alias" yaml:"alias"`
	Points      int       `bson:"points" json:"points" yaml:"points"`
	Streak      int       `bson:"streak" json:"streak" yaml:"streak"`
	Badges      []string  `bson:"badges" json:"badges" yaml:"badges"`
	ReportCount int       `bson:"reportCount" json:"reportCount" yaml:"reportCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt" yaml:"updatedAt"`
}

// DisplayName returns the alias when the user opted into it and has one set
func (u *User) DisplayName() string {
	if u.UseAlias && u.Alias != "" {
		return u.Alias
	}
	return u.Name
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
