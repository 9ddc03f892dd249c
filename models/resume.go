package models

import "time"

// Resume is the career profile a user keeps on the platform, one per user.
// It is stored structured and rendered to PDF on demand.
type Resume struct {
	ID         string             `bson:"id" json:"id"`
	UserID     string             `bson:"userId" json:"userId"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Summary    string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Skills     []string           `bson:"skills,omitempty" json:"skills,omitempty"`
	Experience []ResumeExperience `bson:"experience,omitempty" json:"experience,omitempty"`
	Education  []ResumeEducation  `bson:"education,omitempty" json:"education,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ResumeExperience is one employment entry.
type ResumeExperience struct {
	Company string `bson:"company" json:"company"`
	Title   string `bson:"title" json:"title"`
	Start   string `bson:"start,omitempty" json:"start,omitempty"`
	End     string `bson:"end,omitempty" json:"end,omitempty"`
	Details string `bson:"details,omitempty" json:"details,omitempty"`
}

// ResumeEducation is one education entry.
type ResumeEducation struct {
	School string `bson:"school" json:"school"`
	Degree string `bson:"degree,omitempty" json:"degree,omitempty"`
	Year   string `bson:"year,omitempty" json:"year,omitempty"`
}

// ResumeRequest upserts a user's resume.
type ResumeRequest struct {
	FullName   string             `json:"fullName"`
	Email      string             `json:"email,omitempty"`
	Phone      string             `json:"phone,omitempty"`
	Summary    string             `json:"summary,omitempty"`
	Skills     []string           `json:"skills,omitempty"`
	Experience []ResumeExperience `json:"experience,omitempty"`
	Education  []ResumeEducation  `json:"education,omitempty"`
}
