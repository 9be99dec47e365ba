package models

// Institution is a municipal or utility body that handles complaints
type Institution struct {
	ID           string  `bson:"_id" json:"id" yaml:"id"`
	Name         string  `bson:"name" json:"name" yaml:"name"`
	Type         string  `bson:"type" json:"type" yaml:"type"`
	City         string  `bson:"city" json:"city" yaml:"city"`
	District     string  `bson:"district" json:"district" yaml:"district"`
	Phone        string  `bson:"phone" json:"phone" yaml:"phone"`
	Email        string  `bson:"email" json:"email" yaml:"email"`
	Address      string  `bson:"address" json:"address" yaml:"address"`
	Rating       float64 `bson:"rating" json:"rating" yaml:"rating"`
	ResponseTime string  `bson:"responseTime" json:"responseTime" yaml:"responseTime"`
}

// Club is a volunteer group listed on the community page
type Club struct {
	ID          string `bson:"_id" json:"id" yaml:"id"`
	Name        string `bson:"name" json:"name" yaml:"name"`
	Description string `bson:"description" json:"description" yaml:"description"`
	MemberCount int    `bson:"memberCount" json:"memberCount" yaml:"memberCount"`
	Image       string `bson:"image" json:"image" yaml:"image"`
	Category    string `bson:"category" json:"category" yaml:"category"`
}

type Friend struct {
	ID             string `bson:"_id" json:"id" yaml:"id"`
	Name           string `bson:"name" json:"name" yaml:"name"`
	Avatar         string `bson:"avatar" json:"avatar" yaml:"avatar"`
	RecentActivity string `bson:"recentActivity" json:"recentActivity" yaml:"recentActivity"`
	ReportCount    int    `bson:"reportCount" json:"reportCount" yaml:"reportCount"`
}
